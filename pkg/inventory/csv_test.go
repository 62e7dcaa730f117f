package inventory

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestWriteCSVRowsInInputOrder(t *testing.T) {
	repos := testRepos(3)
	repos[0], repos[2] = repos[2], repos[0]

	var buf bytes.Buffer
	n, err := WriteCSV(&buf, repos)
	if err != nil {
		t.Fatal(err)
	}

	if n != 3 {
		t.Errorf("expected 3 rows, got %d", n)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(repos)+1 {
		t.Fatalf("expected %d lines, got %d", len(repos)+1, len(lines))
	}

	var gotNames []string
	for _, l := range lines[1:] {
		gotNames = append(gotNames, strings.SplitN(l, ",", 2)[0])
	}
	if diff := cmp.Diff([]string{"repo-3", "repo-2", "repo-1"}, gotNames); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	repo := testRepo(7)
	repo.Description = stringPtr(`Says "hello", then
leaves`)
	repo.Teams = []*TeamPermission{{TeamName: "Owners", Permission: RepoPermissionAdmin}}
	repo.OpenPRs = intPtr(2)
	repo.Audit = &RepoAudit{
		CommitsOnDefaultBranch:    intPtr(130),
		LastCommitToDefaultBranch: timePtr(time.Date(2019, 3, 15, 1, 2, 3, 0, time.UTC)),
		HasMasterButNoMain:        true,
		HasLicenseFile:            true,
		Contributing:              FileLinksToDefault,
		CodeOfConduct:             FileNoOrgDefault,
		MissingWhyPrivate:         true,
		UsesTravisCI:              false,
		HasConfigureRenovatePR:    true,
	}

	var buf bytes.Buffer
	if _, err := WriteCSV(&buf, []*Repo{repo}); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		Header(),
		{
			"repo-7",
			"SEEK-Jobs/repo-7",
			"Says \"hello\", then\nleaves",
			"Go",
			"70",
			"7",
			"0",
			"2",
			"2019-03-12T23:41:36Z",
			"2019-03-13T23:41:36Z",
			"2019-03-14T23:41:36Z",
			"true",
			"false",
			"false",
			"master",
			"MIT",
			"go, tools",
			"Owners:admin",
			"https://github.com/SEEK-Jobs/repo-7",
			"130",
			"2019-03-15T01:02:03Z",
			"true",
			"true",
			"links to",
			"no organisation default",
			"true",
			"false",
			"true",
			"",
		},
	}
	if diff := cmp.Diff(want, records); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestWriteCSVAbsentFieldsAreEmpty(t *testing.T) {
	repo := &Repo{ID: 1, Name: "bare", FullName: "SEEK-Jobs/bare"}

	var buf bytes.Buffer
	if _, err := WriteCSV(&buf, []*Repo{repo}); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	row := records[1]
	if len(row) != len(Columns) {
		t.Fatalf("expected %d columns, got %d", len(Columns), len(row))
	}

	for i, c := range Columns {
		want := ""
		switch c.Name {
		case "name":
			want = "bare"
		case "full_name":
			want = "SEEK-Jobs/bare"
		}
		if row[i] != want {
			t.Errorf("column %s: expected %q, got %q", c.Name, want, row[i])
		}
	}
}

func TestWriteCSVZeroValuesAreNotAbsent(t *testing.T) {
	repo := &Repo{Name: "zero", FullName: "SEEK-Jobs/zero", Stars: intPtr(0), Private: boolPtr(false)}

	row, err := Project(repo)
	if err != nil {
		t.Fatal(err)
	}

	if got := row[columnIndex(t, "stars")]; got != "0" {
		t.Errorf("stars: expected \"0\", got %q", got)
	}
	if got := row[columnIndex(t, "private")]; got != "false" {
		t.Errorf("private: expected \"false\", got %q", got)
	}
}

func TestWriteCSVEmptyOrganisation(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteCSV(&buf, nil)
	if err != nil {
		t.Fatal(err)
	}

	if n != 0 {
		t.Errorf("expected 0 rows, got %d", n)
	}

	want := strings.Join(Header(), ",") + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestWriteCSVInvalidUTF8(t *testing.T) {
	repos := testRepos(2)
	repos[1].Description = stringPtr("bad \xff byte")

	var buf bytes.Buffer
	_, err := WriteCSV(&buf, repos)

	want := &EncodingError{Repo: "SEEK-Jobs/repo-2", Column: "description"}
	if diff := cmp.Diff(want, errors.Cause(err)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	if buf.Len() != 0 {
		t.Errorf("expected nothing to be written, got %q", buf.String())
	}
}

func TestWriteCSVFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repos.csv")
	if err := os.WriteFile(path, []byte("stale content that is much longer than the new file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := WriteCSVFile(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	if n != 0 {
		t.Errorf("expected 0 rows, got %d", n)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(strings.Join(Header(), ",")+"\n", string(got)); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestWriteCSVFileIsWorldReadable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not supported on windows")
	}

	path := filepath.Join(t.TempDir(), "repos.csv")
	if _, err := WriteCSVFile(path, testRepos(1)); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != outputFileMode {
		t.Errorf("expected mode %v, got %v", outputFileMode, got)
	}
}

func TestWriteCSVFileLeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()

	if _, err := WriteCSVFile(filepath.Join(dir, "repos.csv"), testRepos(5)); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if diff := cmp.Diff([]string{"repos.csv"}, names); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestWriteCSVFileEncodingFailureKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repos.csv")
	if err := os.WriteFile(path, []byte("previous\n"), 0644); err != nil {
		t.Fatal(err)
	}

	repos := testRepos(1)
	repos[0].Name = "\xfe"

	_, err := WriteCSVFile(path, repos)
	if got := Category(err); got != CategoryEncoding {
		t.Fatalf("expected %s, got %s (%v)", CategoryEncoding, got, err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "previous\n" {
		t.Errorf("expected existing file to be untouched, got %q", got)
	}
}

func TestWriteCSVFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "repos.csv")

	_, err := WriteCSVFile(path, testRepos(1))

	var ioErr *IOWriteError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOWriteError, got %v", err)
	}
	if ioErr.Path != path {
		t.Errorf("expected path %s, got %s", path, ioErr.Path)
	}
}

func TestWriteCSVWriterFailure(t *testing.T) {
	_, err := WriteCSV(failingWriter{}, testRepos(1))

	if got := Category(err); got != CategoryIOWrite {
		t.Errorf("expected %s, got %s", CategoryIOWrite, got)
	}
}

// failingWriter is an io.Writer that always fails.
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

// columnIndex returns the index of the named column.
func columnIndex(t *testing.T, name string) int {
	t.Helper()
	for i, c := range Columns {
		if c.Name == name {
			return i
		}
	}
	t.Fatalf("no column named %s", name)
	return -1
}
