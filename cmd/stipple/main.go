// Command stipple converts sprite sheets between the editor's JSON
// snapshot format and ordinary images.
package main

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	"github.com/phanxgames/stipple"
	"github.com/urfave/cli/v2"
)

// sheetFile is the on-disk snapshot: the sheet's identity plus the plain
// nested-array pixel buffer the core exchanges at its persistence
// boundary.
type sheetFile struct {
	ID     string  `json:"id"`
	Size   int     `json:"size"`
	Pixels [][]int `json:"pixels"`
}

func kindForSize(size int) (stipple.SheetKind, error) {
	switch size {
	case 128:
		return stipple.Sheet128, nil
	case 256:
		return stipple.Sheet256, nil
	default:
		return 0, fmt.Errorf("unsupported sheet size %d (want 128 or 256)", size)
	}
}

func loadSheet(path string) (*stipple.Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f sheetFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	kind, err := kindForSize(f.Size)
	if err != nil {
		return nil, err
	}
	sheet := stipple.NewSheet(f.ID, kind)
	if err := sheet.Grid.Restore(f.Pixels); err != nil {
		return nil, err
	}
	return sheet, nil
}

func saveSheet(path string, sheet *stipple.Sheet) error {
	f := sheetFile{
		ID:     sheet.ID,
		Size:   sheet.Kind.Size(),
		Pixels: sheet.Grid.Snapshot(),
	}
	data, err := json.MarshalIndent(&f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func main() {
	app := cli.NewApp()

	app.Name = "stipple"
	app.Usage = "sprite sheet conversion utility"
	app.Version = "1.0.0"

	app.Commands = []*cli.Command{
		{
			Name:      "export",
			Usage:     "Render a sheet snapshot to a PNG image",
			ArgsUsage: "SHEET.json OUT.png",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "scale",
					Value: 4,
					Usage: "output pixels per sheet pixel",
				},
				&cli.BoolFlag{
					Name:  "grid",
					Usage: "stroke cell boundaries on the output",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				sheet, err := loadSheet(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if err := stipple.ExportPNG(sheet, c.Args().Get(1), c.Int("scale"), c.Bool("grid")); err != nil {
					return cli.NewExitError(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "import",
			Usage:     "Quantize an image into a sheet snapshot",
			ArgsUsage: "IMAGE SHEET.json",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "size",
					Value: 128,
					Usage: "sheet size (128 or 256)",
				},
				&cli.StringFlag{
					Name:  "id",
					Value: "imported",
					Usage: "sheet ID recorded in the snapshot",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				kind, err := kindForSize(c.Int("size"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				r, err := os.Open(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer r.Close()

				m, _, err := image.Decode(r)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				palette := stipple.PaletteFromImage(m)
				sheet := stipple.NewSheetWithPalette(c.String("id"), kind, palette)
				stipple.ImportImage(sheet.Grid, m, palette)

				if err := saveSheet(c.Args().Get(1), sheet); err != nil {
					return cli.NewExitError(err, 1)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
