package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/Clemens865/microlabs/internal/apps"
	apierrors "github.com/Clemens865/microlabs/internal/errors"
)

var imageEditCmd = &cobra.Command{
	Use:   "image-edit <image> <instruction>",
	Short: "Edit an image with a natural-language instruction",
	Long: `Apply a natural-language edit to an image. When the model declines
and answers with text instead of an image, the refusal text is shown and
nothing is written.

Examples:
  microlabs image-edit photo.jpg "remove the background" -o cut.png
  microlabs image-edit chart.png "make the palette colorblind friendly"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImageEdit(args[0], args[1])
	},
}

func init() {
	imageEditCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output image path (default <name>.edited.<ext>)")
}

func runImageEdit(path, instruction string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	mime := mimetype.Detect(data).String()

	client, cfg, err := buildClient()
	if err != nil {
		return err
	}
	started := time.Now()

	spin := newSpinner("Editing image")
	spin.start()

	edited, err := apps.NewImageEditor(client).Run(data, mime, instruction)
	if err != nil {
		spin.stopWithError()
		if text := apierrors.GetRefusalText(err); text != "" {
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Model declined the edit"))
		} else {
			fmt.Fprintln(os.Stderr, formatErrorMessage(err, "Image edit failed"))
		}
		return err
	}

	out := outputFlag
	if out == "" {
		ext := filepath.Ext(path)
		out = strings.TrimSuffix(path, ext) + ".edited" + extForMIME(edited.MIMEType, ext)
	}

	if err := os.WriteFile(out, edited.Data, 0o644); err != nil {
		spin.stopWithError()
		return fmt.Errorf("failed to write image: %w", err)
	}
	spin.stopWithSuccess(fmt.Sprintf("Saved %s", out))

	if edited.Note != "" {
		fmt.Println(edited.Note)
	}
	// Image bytes never go to the clipboard; this only reports timing
	finishOutput(cfg, "", started)
	return nil
}

// extForMIME maps a returned image MIME type to a file extension
func extForMIME(mime, fallback string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	}
	if fallback != "" {
		return fallback
	}
	return ".png"
}
