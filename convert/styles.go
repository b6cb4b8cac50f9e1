package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"docxhtml/css"
	"docxhtml/docx"
	"docxhtml/state"
	"docxhtml/style"
	"docxhtml/utils/debug"
)

// ListStyles is "styles" command action. It prints style library of a single
// model file with resolved chains and CSS each style produces.
func ListStyles(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("styles")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	model, enc, err := isModelFile(src)
	if err != nil {
		return fmt.Errorf("unable to check file type: %w", err)
	}
	if !model {
		return fmt.Errorf("input was not recognized as document model (%s)", src)
	}

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := docx.Decode(selectReader(f, enc))
	if err != nil {
		return fmt.Errorf("unable to decode document model (%s): %w", src, err)
	}
	if path := cmd.String("theme"); len(path) > 0 && len(doc.Theme) == 0 {
		if doc.Theme, err = loadTheme(path); err != nil {
			return err
		}
	}

	_, err = io.WriteString(os.Stdout, describeStyles(doc))
	return err
}

// describeStyles renders style library in natural order of style ids.
func describeStyles(doc *docx.Document) string {
	resolver := style.NewResolver(doc.Styles, doc.Theme)
	idx := resolver.Index()
	base := resolver.Paragraph(nil, nil)
	baseRun := resolver.Run(nil, base)

	tw := debug.NewTreeWriter()
	tw.Line(0, "Defaults")
	tw.Line(1, "paragraph: %s", css.NewParagraph(base, baseRun).Declarations())
	tw.Line(1, "run: %s", css.NewRun(baseRun).Declarations())
	if defs := idx.DefaultHierarchy(); len(defs) > 0 {
		tw.Line(1, "default styles: %s", strings.Join(defs, ", "))
	}

	styles := append([]*docx.Style(nil), idx.Styles()...)
	sort.SliceStable(styles, func(i, j int) bool {
		return natural.Less(styles[i].ID, styles[j].ID)
	})

	tw.Line(0, "Styles: %d", len(styles))
	for _, st := range styles {
		tw.Attrs(1, "Style", "id", st.ID, "name", st.Name, "type", string(st.Type), "default", strconv.FormatBool(st.Default))

		chain := idx.Chain(st.ID)
		ids := make([]string, 0, len(chain))
		for _, s := range chain {
			ids = append(ids, s.ID)
		}
		tw.Line(2, "chain: %s", strings.Join(ids, " -> "))
		if st.Link != "" {
			tw.Line(2, "link: %s", st.Link)
		}

		switch st.Type {
		case docx.StyleParagraph:
			p := resolver.Paragraph(&docx.ParagraphProperties{StyleID: st.ID}, nil)
			r := resolver.Run(nil, p)
			tw.Line(2, "paragraph: %s", css.NewParagraph(p, r).Declarations())
			tw.Line(2, "run: %s", css.NewRun(r).Declarations())
		case docx.StyleCharacter:
			r := resolver.Run(&docx.RunProperties{StyleID: st.ID}, base)
			tw.Line(2, "run: %s", css.NewRun(r).Declarations())
		case docx.StyleTable:
			ts := resolver.Table(&docx.TableProperties{StyleID: st.ID})
			tw.Line(2, "table: %s", css.Box{Background: ts.Background, Borders: ts.Borders.Perimeter}.Declarations())
			for _, region := range regionOrder {
				if rg := ts.Region(region); rg != nil {
					tw.Line(3, "%s: %s", region, css.Box{Background: rg.Background, Borders: rg.Borders}.Declarations())
				}
			}
		}
	}

	if len(doc.Theme) > 0 {
		tw.Line(0, "Theme: %d", len(doc.Theme))
		for _, k := range docx.SortedKeys(doc.Theme) {
			tw.Line(1, "%s=%s", k, doc.Theme[k])
		}
	}
	return tw.String()
}

var regionOrder = []docx.RegionType{
	docx.RegionWholeTable,
	docx.RegionFirstRow,
	docx.RegionLastRow,
	docx.RegionFirstColumn,
	docx.RegionLastColumn,
	docx.RegionBand1Horz,
	docx.RegionBand2Horz,
	docx.RegionBand1Vert,
	docx.RegionBand2Vert,
}
