package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvkeep/mediavault/internal/common"
)

func srcOf(name, mimeType string, content []byte) Source {
	return Source{
		Name: name,
		Size: int64(len(content)),
		MIME: mimeType,
		Open: func() ([]byte, error) { return content, nil },
	}
}

func TestIngest_Policy(t *testing.T) {
	ctx := context.Background()
	p := NewPipeline(1024)

	tests := []struct {
		name    string
		src     Source
		kind    Kind
		wantErr error
	}{
		{"image within limit", srcOf("a.png", "image/png", []byte("png-bytes")), Image, nil},
		{"video within limit", srcOf("a.mp4", "video/mp4", []byte("mp4-bytes")), Video, nil},
		{"oversized file", srcOf("big.png", "image/png", make([]byte, 2048)), Image, common.ErrTooLarge},
		{"video on the image channel", srcOf("a.mp4", "video/mp4", []byte("x")), Image, common.ErrWrongType},
		{"image on the video channel", srcOf("a.png", "image/png", []byte("x")), Video, common.ErrWrongType},
		{"unrelated type", srcOf("a.txt", "text/plain", []byte("x")), Image, common.ErrWrongType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := p.Ingest(ctx, tc.src, tc.kind)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.src.Name, m.Name)
			assert.Equal(t, tc.src.MIME, m.Type)
			assert.True(t, strings.HasPrefix(m.Data, "data:"+tc.src.MIME+";base64,"))
		})
	}
}

func TestIngest_SizeIsCheckedBeforeType(t *testing.T) {
	// An oversized file of the wrong type must report TooLarge: policy is
	// evaluated in order and the first failure wins.
	p := NewPipeline(10)
	src := srcOf("big.mp4", "video/mp4", make([]byte, 11))
	_, err := p.Ingest(context.Background(), src, Image)
	require.ErrorIs(t, err, common.ErrTooLarge)
}

func TestIngest_ReadFailure(t *testing.T) {
	p := NewPipeline(0)
	src := Source{
		Name: "gone.png",
		Size: 4,
		MIME: "image/png",
		Open: func() ([]byte, error) { return nil, errors.New("io boom") },
	}
	_, err := p.Ingest(context.Background(), src, Image)
	require.ErrorIs(t, err, common.ErrReadFailure)
}

func TestDataURL_RoundTrip(t *testing.T) {
	content := []byte{0x00, 0xFF, 0x10, 0x42}
	enc := EncodeDataURL("image/png", content)
	require.Equal(t, "data:image/png;base64,AP8QQg==", enc)

	mimeType, data, err := DecodeDataURL(enc)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, content, data)
}

func TestDecodeDataURL_Malformed(t *testing.T) {
	for _, s := range []string{"", "plain text", "data:image/png,nope", "data:image/png;base64,!!!"} {
		_, _, err := DecodeDataURL(s)
		require.Error(t, err, "input %q", s)
	}
}

func TestFromPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("extension drives the MIME type", func(t *testing.T) {
		path := filepath.Join(dir, "pic.png")
		require.NoError(t, os.WriteFile(path, []byte("fake png"), 0o600))

		src, err := FromPath(path)
		require.NoError(t, err)
		assert.Equal(t, "pic.png", src.Name)
		assert.Equal(t, int64(8), src.Size)
		assert.Equal(t, "image/png", src.MIME)

		b, err := src.Open()
		require.NoError(t, err)
		assert.Equal(t, []byte("fake png"), b)
	})

	t.Run("video extensions are registered", func(t *testing.T) {
		path := filepath.Join(dir, "clip.mp4")
		require.NoError(t, os.WriteFile(path, []byte("fake mp4"), 0o600))

		src, err := FromPath(path)
		require.NoError(t, err)
		assert.Equal(t, "video/mp4", src.MIME)
	})

	t.Run("missing file reports a read failure", func(t *testing.T) {
		_, err := FromPath(filepath.Join(dir, "nope.png"))
		require.ErrorIs(t, err, common.ErrReadFailure)
	})
}
