package inventory

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultOutputPath is the file written when no output path is given.
const DefaultOutputPath = "github_repo_data.csv"

// ExportRequest describes a single export of an organisation's repositories.
type ExportRequest struct {
	ListRequest
	OutputPath   string // Destination of the CSV, DefaultOutputPath when empty
	UploadBucket string // S3 bucket the CSV is copied to, no upload when empty
	UploadKey    string // S3 key of the copy, "<org>/<file name>" when empty
}

// ExportResult summarises a completed export.
type ExportResult struct {
	OrgName    string `json:"orgName" yaml:"orgName"`
	OutputPath string `json:"outputPath" yaml:"outputPath"`
	Rows       int    `json:"rows" yaml:"rows"`
	Archived   int    `json:"archived" yaml:"archived"`
	Duplicates int    `json:"duplicates" yaml:"duplicates"`
	Total      int    `json:"total" yaml:"total"`
	UploadedTo string `json:"uploadedTo,omitempty" yaml:"uploadedTo,omitempty"`
}

// Header implements cmd.TableData.
func (r *ExportResult) Header() []string {
	return []string{"Field", "Value"}
}

// Records implements cmd.TableData.
func (r *ExportResult) Records() [][]string {
	records := [][]string{
		{"Organisation", r.OrgName},
		{"Output", r.OutputPath},
		{"Rows", fmt.Sprint(r.Rows)},
		{"Archived skipped", fmt.Sprint(r.Archived)},
		{"Duplicates dropped", fmt.Sprint(r.Duplicates)},
		{"Total listed", fmt.Sprint(r.Total)},
	}
	if r.UploadedTo != "" {
		records = append(records, []string{"Uploaded to", r.UploadedTo})
	}
	return records
}

// Export lists the repositories of the requested organisation, writes them to a CSV file and
// optionally uploads the file. Nothing is written unless every page was listed.
func Export(ctx context.Context, plat Platform, req *ExportRequest) (*ExportResult, error) {
	outputPath := req.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputPath
	}
	orgName := strings.TrimSpace(req.OrgName)

	listing, err := ListRepositories(ctx, plat, &req.ListRequest)
	if err != nil {
		return nil, err
	}

	rows, err := WriteCSVFile(outputPath, listing.Repos)
	if err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Info().Msgf("Wrote %d repositories to %s", rows, outputPath)

	res := &ExportResult{
		OrgName:    orgName,
		OutputPath: outputPath,
		Rows:       rows,
		Archived:   listing.Archived,
		Duplicates: listing.Duplicates,
		Total:      listing.Total,
	}

	if req.UploadBucket != "" {
		key := req.UploadKey
		if key == "" {
			key = path.Join(orgName, filepath.Base(outputPath))
		}

		if err := upload(ctx, plat.Uploader(), outputPath, req.UploadBucket, key); err != nil {
			return nil, err
		}
		res.UploadedTo = fmt.Sprintf("s3://%s/%s", req.UploadBucket, key)
		zerolog.Ctx(ctx).Info().Msgf("Uploaded %s to %s", outputPath, res.UploadedTo)
	}

	return res, nil
}

// upload copies the file at localPath to the specified bucket and key.
func upload(ctx context.Context, uploader Uploader, localPath, bucket, key string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return &IOWriteError{Path: localPath, Err: err}
	}
	defer f.Close()

	if err := uploader.Upload(ctx, bucket, key, f); err != nil {
		return &IOWriteError{Path: fmt.Sprintf("s3://%s/%s", bucket, key), Err: err}
	}
	return nil
}
