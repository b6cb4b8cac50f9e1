package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer r.Close()

	files := make(map[string]string)
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Archive(t *testing.T) {
	tmp := t.TempDir()
	dest := filepath.Join(tmp, "report.zip")

	rpt, err := (&ReporterConfig{Destination: dest}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if rpt.Name() != dest {
		t.Errorf("Name() = %q, want %q", rpt.Name(), dest)
	}

	stored := filepath.Join(tmp, "input.yaml")
	if err := os.WriteFile(stored, []byte("body: []"), 0644); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join(tmp, "work")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "page.html"), []byte("<p>x</p>"), 0644); err != nil {
		t.Fatal(err)
	}

	rpt.Store("input.yaml", stored)
	rpt.Store("work", dir)
	rpt.Store("missing", filepath.Join(tmp, "absent"))
	rpt.StoreData("model.txt", []byte("first"))
	rpt.StoreData("model.txt", []byte("second"))

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, dest)
	if files["input.yaml"] != "body: []" {
		t.Errorf("stored file content = %q", files["input.yaml"])
	}
	if files["work/sub/page.html"] != "<p>x</p>" {
		t.Errorf("stored directory was not archived: %v", files)
	}
	if _, ok := files["missing"]; ok {
		t.Error("absent file must be skipped")
	}
	if files["model.txt"] != "first" {
		t.Errorf("model.txt = %q, want first", files["model.txt"])
	}
	versioned := 0
	for name, data := range files {
		if strings.HasPrefix(name, "model.txt-") && data == "second" {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("repeated data name must be versioned once, archive: %v", files)
	}
	if !strings.Contains(files["MANIFEST"], "input.yaml") {
		t.Errorf("MANIFEST does not list stored file: %q", files["MANIFEST"])
	}
}

func TestReport_StoreCopy(t *testing.T) {
	tmp := t.TempDir()
	dest := filepath.Join(tmp, "report.zip")
	rpt, err := (&ReporterConfig{Destination: dest}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	src := filepath.Join(tmp, "extra.css")
	if err := os.WriteFile(src, []byte("p{color:red}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := rpt.StoreCopy("stylesheet", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	// copy is taken at the time of call
	if err := os.WriteFile(src, []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}
	copies := append([]string(nil), rpt.copies...)

	if err := rpt.StoreCopy("directory", tmp); err == nil {
		t.Error("StoreCopy() of directory must fail")
	}

	if err := rpt.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if got := readArchive(t, dest)["stylesheet"]; got != "p{color:red}" {
		t.Errorf("stylesheet copy = %q", got)
	}
	for _, dir := range copies {
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			os.RemoveAll(dir)
			t.Errorf("temporary copy %s was not removed", dir)
		}
	}
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", []byte("b"))
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Error("nil report has no name")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}

func TestReport_StoreConflict(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("log", "a.log")
	r.Store("log", "a.log")

	defer func() {
		if recover() == nil {
			t.Error("storing different path under the same name must panic")
		}
	}()
	r.Store("log", "b.log")
}
