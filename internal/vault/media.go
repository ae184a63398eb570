// Package vault stores each user's media collection: ordered records of
// filename, MIME type, and encoded file content.
package vault

// Media is one stored file. Data carries the full file content as a
// data: URL, so the record alone is enough to reconstruct a displayable
// resource. Names are the original filenames and are not unique.
type Media struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"`
}
