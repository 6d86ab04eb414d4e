package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// documentsView lists the current user's uploaded documents.
func (a *App) documentsView(ctx context.Context) error {
	docs, err := a.api.ListDocuments(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load documents: %s\n", err.Error())
		return nil
	}
	if len(docs) == 0 {
		fmt.Fprintln(a.out, "No documents. Use 'upload' to add one.")
		return nil
	}
	for _, d := range docs {
		fmt.Fprintf(a.out, "%s  %-30s %8d bytes  %s\n",
			d.ID, d.Name, d.SizeBytes, d.UploadedAt.Format("2006-01-02"))
	}
	return nil
}

// uploadView sends a local file to the portal.
func (a *App) uploadView(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "File to upload", a.out)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(a.out, "Could not open %s: %s\n", path, err.Error())
		return nil
	}
	defer f.Close()

	doc, err := a.api.UploadDocument(ctx, filepath.Base(path), f)
	if err != nil {
		fmt.Fprintf(a.out, "Upload failed: %s\n", err.Error())
		return nil
	}
	fmt.Fprintf(a.out, "Uploaded %s (%d bytes).\n", doc.Name, doc.SizeBytes)
	return nil
}
