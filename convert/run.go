package convert

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/language"

	"docxhtml/archive"
	"docxhtml/convert/html"
	"docxhtml/css"
	"docxhtml/docx"
	"docxhtml/state"
)

// source is decoded document model together with its origin.
type source struct {
	doc *docx.Document
	// part of the source path relative to what was requested, always
	// including file name
	name string
	// language of the produced page
	lang string
}

// Run is "convert" command action.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	if lang := cmd.String("lang"); len(lang) > 0 {
		if tag, err := language.Parse(lang); err != nil {
			log.Warn("Malformed language tag, ignoring", zap.String("lang", lang), zap.Error(err))
		} else {
			env.Language = tag.String()
		}
	}

	if path := cmd.String("theme"); len(path) > 0 {
		if env.Theme, err = loadTheme(path); err != nil {
			return err
		}
		if err := env.Rpt.StoreCopy("theme.xml", path); err != nil {
			log.Warn("Unable to store theme in report", zap.Error(err))
		}
		log.Debug("Using theme colors", zap.String("file", path), zap.Int("colors", len(env.Theme)))
	}

	if path := env.Cfg.Document.StylesheetPath; len(path) > 0 {
		sheet, err := loadStylesheet(path, log)
		if err != nil {
			return err
		}
		env.Stylesheets = append(env.Stylesheets, sheet)
		if err := env.Rpt.StoreCopy("stylesheet.css", path); err != nil {
			log.Warn("Unable to store stylesheet in report", zap.Error(err))
		}
	}

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

func loadTheme(path string) (docx.ThemeColors, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open theme %q: %w", path, err)
	}
	defer f.Close()

	theme, err := docx.ParseTheme(f)
	if err != nil {
		return nil, fmt.Errorf("unable to load theme %q: %w", path, err)
	}
	return theme, nil
}

// loadStylesheet reads user stylesheet. Relative references are resolved
// against stylesheet location since output is written elsewhere.
func loadStylesheet(path string, log *zap.Logger) (*css.Stylesheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read stylesheet from %q: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	sheet := css.NewParser(log).Parse(data, path)
	for _, w := range sheet.Warnings {
		log.Warn("Stylesheet problem", zap.String("file", path), zap.String("problem", w))
	}
	sheet.RewriteURLs(func(ref string) string {
		return resolveStylesheetURL(filepath.Dir(abs), ref)
	})
	return sheet, nil
}

// resolveStylesheetURL turns relative reference into absolute file URL.
// References with scheme, rooted paths and fragments are kept.
func resolveStylesheetURL(dir, ref string) string {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "/") {
		return ref
	}
	if u, err := url.Parse(ref); err != nil || u.Scheme != "" || u.Host != "" {
		return ref
	}
	target := filepath.ToSlash(filepath.Join(dir, filepath.FromSlash(ref)))
	if !strings.HasPrefix(target, "/") {
		// drive letter
		target = "/" + target
	}
	return (&url.URL{Scheme: "file", Path: target}).String()
}

// process determines the input type (directory, archive, or single file) and
// processes it accordingly. Source may point inside archive.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			tail = filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := processArchive(ctx, head, tail, "", dst, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		model, enc, err := isModelFile(head)
		if err != nil {
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if model && len(tail) == 0 {
			file, err := os.Open(head)
			if err != nil {
				return fmt.Errorf("unable to open file: %w", err)
			}
			defer file.Close()
			if err := processModel(ctx, selectReader(file, enc), filepath.Base(head), dst, log); err != nil {
				return fmt.Errorf("unable to process file: %w", err)
			}
			break
		}
		return fmt.Errorf("input was not recognized as document model (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree finding model files and archives and
// processes them.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		isArchive, err := isArchiveFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if isArchive {
			count++
			if err := processArchive(ctx, path, "", filepath.Dir(strings.TrimPrefix(path, dir)), dst, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		model, enc, err := isModelFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !model {
			log.Debug("Skipping file, not recognized as document model or archive", zap.String("file", path))
			return nil
		}

		count++

		file, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}
		defer file.Close()

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processModel(ctx, selectReader(file, enc), src, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
}

// processArchive walks all files inside archive, finds model files under
// "pathIn" and processes them.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	cp := state.EnvFromContext(ctx).CodePage

	return archive.Walk(path, pathIn, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		model, enc, err := isModelInArchive(f)
		if err != nil {
			log.Warn("Skipping file in archive", zap.String("archive", arc), zap.String("path", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		if !model {
			log.Debug("Skipping file, not recognized as document model", zap.String("archive", arc), zap.String("file", f.FileHeader.Name))
			return nil
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
			return nil
		}
		defer r.Close()

		name := f.FileHeader.Name
		if cp != nil && f.FileHeader.NonUTF8 {
			if n, err := cp.NewDecoder().String(name); err == nil {
				name = n
			} else {
				cs, _ := ianaindex.IANA.Name(cp)
				log.Warn("Unable to convert archive name from specified encoding", zap.String("charset", cs), zap.String("path", name), zap.Error(err))
			}
		}
		if err := processModel(ctx, selectReader(r, enc), filepath.Join(pathOut, filepath.FromSlash(name)), dst, log); err != nil {
			log.Error("Unable to process file in archive", zap.String("archive", arc), zap.String("file", f.FileHeader.Name), zap.Error(err))
		}
		return nil
	})
}

// processModel converts single document model. "src" is part of the source
// path relative to the original path (always including file name), "dst" is
// destination directory.
func processModel(ctx context.Context, r io.Reader, src, dst string, log *zap.Logger) (rerr error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	var refID, outputName string

	log.Info("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else if rerr == nil {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("ref_id", refID))
		}
	}(time.Now())

	doc, err := docx.Decode(r)
	if err != nil {
		return fmt.Errorf("unable to decode document model (%s): %w", src, err)
	}

	// every document needs valid reference id for report entries
	if _, err := uuid.Parse(doc.ID); err != nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("unable to generate document id: %w", err)
		}
		if doc.ID != "" {
			log.Debug("Document has invalid ID, replacing", zap.String("old_id", doc.ID), zap.Stringer("new_id", id))
		}
		doc.ID = id.String()
	}
	refID = doc.ID

	if env.ApplyTheme(doc) {
		log.Debug("Document has no theme, using loaded colors", zap.Int("colors", len(doc.Theme)))
	}
	env.Rpt.StoreData(fmt.Sprintf("model-%s.txt", refID), []byte(doc.String()))

	renderer := html.New(env.RenderOptions(), log)

	page, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("unable to render document (%s): %w", src, err)
	}

	outputName = buildOutputPath(&source{doc: doc, name: src, lang: renderer.Language(doc)}, dst, env)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, []byte(page), 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	env.Rpt.Store(fmt.Sprintf("result-%s%s", refID, outputExt), outputName)
	return nil
}
