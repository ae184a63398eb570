package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mvkeep/mediavault/internal/common"
	"github.com/mvkeep/mediavault/internal/ingest"
	"github.com/mvkeep/mediavault/internal/vault"
)

// confirmFn is a test seam for the clear-all confirmation prompt.
var confirmFn = Confirm

// AddPhotos uploads the given files through the image channel.
func (a *App) AddPhotos(ctx context.Context, paths []string) error {
	return a.upload(ctx, paths, ingest.Image)
}

// AddVideos uploads the given files through the video channel.
func (a *App) AddVideos(ctx context.Context, paths []string) error {
	return a.upload(ctx, paths, ingest.Video)
}

// upload runs the ingestion pipeline once per selected file. Files are
// independent: a failure is reported and skipped, never aborting the batch.
// All successes are persisted in one vault write.
func (a *App) upload(ctx context.Context, paths []string, kind ingest.Kind) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in to upload media.")
		return common.ErrNoUser
	}
	if len(paths) == 0 {
		if kind == ingest.Video {
			printlnFn("Usage: addvideos <file...>")
		} else {
			printlnFn("Usage: addphotos <file...>")
		}
		return nil
	}

	var accepted []vault.Media
	for _, path := range paths {
		src, err := ingest.FromPath(path)
		if err != nil {
			printlnFn(fmt.Sprintf("Could not read file %q.", path))
			continue
		}
		m, err := a.pipeline.Ingest(ctx, src, kind)
		if err != nil {
			printlnFn(ingestMessage(src.Name, kind, err))
			continue
		}
		accepted = append(accepted, m)
	}

	if len(accepted) == 0 {
		printlnFn("No valid files were uploaded.")
		return nil
	}

	if err := a.vault.Add(ctx, accepted); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("%d file(s) uploaded successfully!", len(accepted)))
	return nil
}

// List prints the current collection, one record per line, with the index
// used by delete and save.
func (a *App) List(ctx context.Context) error {
	records, err := a.vault.List(ctx)
	if err != nil {
		printlnFn(vaultMessage(err))
		return err
	}
	if len(records) == 0 {
		printlnFn("No media stored yet. Upload some files!")
		return nil
	}
	for i, m := range records {
		printlnFn(fmt.Sprintf("[%d] %s - %s", i, m.Name, m.Type))
	}
	return nil
}

// Delete removes the record at the given index.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: delete <index>")
		return nil
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage: delete <index>")
		return nil
	}

	if err := a.vault.DeleteAt(ctx, index); err != nil {
		printlnFn(vaultMessage(err))
		return err
	}
	printlnFn("Media deleted successfully!")
	return nil
}

// Save decodes the record at the given index back to a file on disk.
func (a *App) Save(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: save <index> <path>")
		return nil
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		printlnFn("Usage: save <index> <path>")
		return nil
	}

	records, err := a.vault.List(ctx)
	if err != nil {
		printlnFn(vaultMessage(err))
		return err
	}
	if index < 0 || index >= len(records) {
		printlnFn(vaultMessage(common.ErrIndexOutOfRange))
		return common.ErrIndexOutOfRange
	}

	_, data, err := ingest.DecodeDataURL(records[index].Data)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	if err := os.WriteFile(args[1], data, 0o600); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Saved %q to %s.", records[index].Name, args[1]))
	return nil
}

// ClearAll deletes the whole collection after an explicit confirmation.
func (a *App) ClearAll(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("No user logged in to clear media.")
		return common.ErrNoUser
	}

	ok := confirmFn(a.reader,
		"Are you sure you want to delete all stored media for your account? This action cannot be undone.",
		os.Stdout)
	if !ok {
		printlnFn("Clear cancelled.")
		return nil
	}

	if err := a.vault.Clear(ctx); err != nil {
		printlnFn(vaultMessage(err))
		return err
	}
	printlnFn("All media cleared for your account!")
	return nil
}

func ingestMessage(name string, kind ingest.Kind, err error) string {
	switch {
	case errors.Is(err, common.ErrTooLarge):
		return fmt.Sprintf("File %q is too large (max 5MB).", name)
	case errors.Is(err, common.ErrWrongType):
		if kind == ingest.Video {
			return fmt.Sprintf("File %q is not a video.", name)
		}
		return fmt.Sprintf("File %q is not an image.", name)
	case errors.Is(err, common.ErrReadFailure):
		return fmt.Sprintf("Could not read file %q.", name)
	default:
		return "Error: " + err.Error()
	}
}

func vaultMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrNoUser):
		return "Please log in to view media."
	case errors.Is(err, common.ErrIndexOutOfRange):
		return "No media record at that index."
	default:
		return "Error: " + err.Error()
	}
}
