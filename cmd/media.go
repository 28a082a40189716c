package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/porkengine/gutenberg/internal/media"
)

var (
	addMime   string
	addWidth  int
	addHeight int
	addAlt    string
)

// mediaItemDTO is the JSON shape media:list prints.
type mediaItemDTO struct {
	ID     int64             `json:"id"`
	GUID   string            `json:"guid"`
	URL    string            `json:"url"`
	Alt    string            `json:"alt,omitempty"`
	Mime   string            `json:"mime"`
	Width  int               `json:"width"`
	Height int               `json:"height"`
	Sizes  map[string]string `json:"sizes,omitempty"`
}

func toDTO(item *media.Item) mediaItemDTO {
	dto := mediaItemDTO{
		ID:     item.ID,
		GUID:   item.GUID,
		URL:    item.URL,
		Alt:    item.Alt,
		Mime:   item.Mime,
		Width:  item.Width,
		Height: item.Height,
	}
	if len(item.Sizes) > 0 {
		dto.Sizes = make(map[string]string, len(item.Sizes))
		for slug, v := range item.Sizes {
			dto.Sizes[slug] = fmt.Sprintf("%s (%dx%d)", v.URL, v.Width, v.Height)
		}
	}
	return dto
}

var mediaListCmd = &cobra.Command{
	Use:   "media:list",
	Short: "List registered media items",
	Long: `List every item in the media library as JSON, newest first.

Examples:
  gutenberg media:list
  gutenberg media:list | jq '.[].url'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeDB, err := openLibrary()
		if err != nil {
			return err
		}
		defer closeDB()

		items, err := svc.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("listing media: %w", err)
		}

		dtos := make([]mediaItemDTO, 0, len(items))
		for _, item := range items {
			dtos = append(dtos, toDTO(item))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dtos)
	},
}

var mediaAddCmd = &cobra.Command{
	Use:   "media:add <filename>",
	Short: "Register a media item",
	Long: `Register a file in the media library. Size variants are generated
from the given natural dimensions.

Examples:
  gutenberg media:add photo.png --width 1600 --height 900
  gutenberg media:add diagram.png -W 800 -H 600 --mime image/png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeDB, err := openLibrary()
		if err != nil {
			return err
		}
		defer closeDB()

		file := media.File{
			Name:   args[0],
			Mime:   addMime,
			Width:  addWidth,
			Height: addHeight,
		}

		var runErr error
		svc.Upload(cmd.Context(), []media.File{file}, func(items []*media.Item, err error) {
			if err != nil {
				runErr = err
				return
			}
			for _, item := range items {
				if addAlt != "" {
					item.Alt = addAlt
					if err := svc.Save(cmd.Context(), item); err != nil {
						runErr = err
						return
					}
				}
				fmt.Fprintf(os.Stdout, "registered %s as id %d\n", item.URL, item.ID)
			}
		})
		return runErr
	},
}

var mediaRmCmd = &cobra.Command{
	Use:   "media:rm <id>",
	Short: "Remove a media item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid media id %q", args[0])
		}

		svc, closeDB, err := openLibrary()
		if err != nil {
			return err
		}
		defer closeDB()

		if err := svc.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("removing media %d: %w", id, err)
		}
		fmt.Fprintf(os.Stdout, "removed %d\n", id)
		return nil
	},
}

func init() {
	mediaAddCmd.Flags().StringVar(&addMime, "mime", "image/png", "MIME type of the file")
	mediaAddCmd.Flags().IntVarP(&addWidth, "width", "W", 0, "natural width in pixels")
	mediaAddCmd.Flags().IntVarP(&addHeight, "height", "H", 0, "natural height in pixels")
	mediaAddCmd.Flags().StringVar(&addAlt, "alt", "", "alternative text")

	rootCmd.AddCommand(mediaListCmd)
	rootCmd.AddCommand(mediaAddCmd)
	rootCmd.AddCommand(mediaRmCmd)
}
