package cli

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/SEEK-Jobs/repoinv/pkg/cmd"
	"github.com/SEEK-Jobs/repoinv/pkg/inventory"
)

// exportOptions holds the flags of the export command.
type exportOptions struct {
	orgName          string
	output           string
	api              string
	repoType         string
	sort             string
	direction        string
	skipArchived     bool
	teams            bool
	audit            bool
	botUser          string
	retries          int
	token            string
	tokenFile        string
	tokenSecretID    string
	uploadBucket     string
	uploadKey        string
	gitHubAPIURL     string
	gitHubGraphQLURL string
}

// newExportCommand returns the "repoinv export" sub-command which writes the repositories of an
// organisation to a CSV file.
func newExportCommand(ctx context.Context) *cobra.Command {
	var opts exportOptions
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Exports the repositories of an organisation to a CSV file",
		RunE: func(c *cobra.Command, args []string) error {
			opts.merge(c.Flags(), fileConfig)
			if err := opts.validate(); err != nil {
				return err
			}

			if err := cmd.LoadDotEnv(".env"); err != nil {
				return err
			}

			plat, err := newPlatform(ctx, &cmd.PlatformOptions{
				Tokens: cmd.TokenSources{
					Token:    opts.token,
					File:     opts.tokenFile,
					SecretID: opts.tokenSecretID,
				},
				API:              opts.api,
				Retries:          opts.retries,
				GitHubAPIURL:     opts.gitHubAPIURL,
				GitHubGraphQLURL: opts.gitHubGraphQLURL,
			})
			if err != nil {
				return err
			}

			res, err := inventory.Export(ctx, plat, &inventory.ExportRequest{
				ListRequest: inventory.ListRequest{
					OrgName: opts.orgName,
					Options: inventory.WalkReposOptions{
						Type:      opts.repoType,
						Sort:      opts.sort,
						Direction: opts.direction,
					},
					SkipArchived: opts.skipArchived,
					IncludeTeams: opts.teams,
					Audit:        opts.audit,
					BotUser:      opts.botUser,
				},
				OutputPath:   opts.output,
				UploadBucket: opts.uploadBucket,
				UploadKey:    opts.uploadKey,
			})
			cmd.LogMetrics(ctx)
			if err != nil {
				return err
			}

			return printer.Print(res)
		},
	}

	f := exportCmd.Flags()
	f.StringVar(&opts.orgName, "org-name", "", "Name of the GitHub organisation that owns the repositories")
	f.StringVar(&opts.output, "output", inventory.DefaultOutputPath, "Path of the CSV file to write")
	f.StringVar(&opts.api, "api", cmd.APIREST, "GitHub API used to list repositories (must be one of 'rest' or 'graphql')")
	f.StringVar(&opts.repoType, "type", "", "Type of repositories to list (one of 'all', 'public', 'private', 'forks', 'sources' or 'member')")
	f.StringVar(&opts.sort, "sort", "", "Sort field (one of 'created', 'updated', 'pushed' or 'full_name')")
	f.StringVar(&opts.direction, "direction", "", "Sort direction (one of 'asc' or 'desc')")
	f.BoolVar(&opts.skipArchived, "skip-archived", false, "Leave archived repositories out of the CSV")
	f.BoolVar(&opts.teams, "teams", false, "Include the teams with access to each repository")
	f.BoolVar(&opts.audit, "audit", false, "Fill the audit columns (commits, community files, CI and open pull requests) of each repository")
	f.StringVar(&opts.botUser, "bot-user", "", "Login of the organisation bot whose unmerged pull requests are reported by --audit")
	f.IntVar(&opts.retries, "retries", 0, "Number of times a listing that failed with a transient network error is retried")
	f.StringVar(&opts.token, "token", "", "GitHub token")
	f.StringVar(&opts.tokenFile, "token-file", "", "File containing the GitHub token")
	f.StringVar(&opts.tokenSecretID, "token-secret-id", "", "ID of the AWS Secrets Manager secret containing the GitHub token")
	f.StringVar(&opts.uploadBucket, "upload-bucket", "", "S3 bucket the CSV is uploaded to")
	f.StringVar(&opts.uploadKey, "upload-key", "", "S3 key of the uploaded CSV (defaults to '<org-name>/<file name>')")
	f.StringVar(&opts.gitHubAPIURL, "github-api-url", "", "Base URL of the GitHub REST API")
	f.StringVar(&opts.gitHubGraphQLURL, "github-graphql-url", "", "URL of the GitHub GraphQL API")

	return exportCmd
}

// merge copies values from the configuration file into options whose flags were not set.
func (o *exportOptions) merge(flags *pflag.FlagSet, fc *cmd.FileConfig) {
	mergeString(flags, "org-name", &o.orgName, fc.OrgName)
	mergeString(flags, "output", &o.output, fc.Output)
	mergeString(flags, "api", &o.api, fc.API)
	mergeString(flags, "type", &o.repoType, fc.Type)
	mergeString(flags, "sort", &o.sort, fc.Sort)
	mergeString(flags, "direction", &o.direction, fc.Direction)
	mergeString(flags, "token-file", &o.tokenFile, fc.TokenFile)
	mergeString(flags, "token-secret-id", &o.tokenSecretID, fc.TokenSecretID)
	mergeString(flags, "upload-bucket", &o.uploadBucket, fc.UploadBucket)
	mergeString(flags, "upload-key", &o.uploadKey, fc.UploadKey)
	mergeString(flags, "bot-user", &o.botUser, fc.BotUser)
	mergeString(flags, "github-api-url", &o.gitHubAPIURL, fc.GitHubAPIURL)
	mergeString(flags, "github-graphql-url", &o.gitHubGraphQLURL, fc.GitHubGraphQLURL)

	if !flags.Changed("skip-archived") && fc.SkipArchived != nil {
		o.skipArchived = *fc.SkipArchived
	}
	if !flags.Changed("teams") && fc.Teams != nil {
		o.teams = *fc.Teams
	}
	if !flags.Changed("audit") && fc.Audit != nil {
		o.audit = *fc.Audit
	}
	if !flags.Changed("retries") && fc.Retries != nil {
		o.retries = *fc.Retries
	}
}

// validate checks the merged options.
func (o *exportOptions) validate() error {
	if strings.TrimSpace(o.orgName) == "" {
		return errors.New("an organisation name is required: use --org-name or set orgName in the config file")
	}
	if o.botUser != "" && !o.audit {
		return errors.New("--bot-user only applies to --audit")
	}
	if o.retries < 0 {
		return errors.Errorf("--retries must not be negative, got %d", o.retries)
	}
	if err := oneOf("type", o.repoType, inventory.RepoTypeAll, inventory.RepoTypePublic, inventory.RepoTypePrivate,
		inventory.RepoTypeForks, inventory.RepoTypeSources, inventory.RepoTypeMember); err != nil {
		return err
	}
	if err := oneOf("sort", o.sort, inventory.SortCreated, inventory.SortUpdated, inventory.SortPushed,
		inventory.SortFullName); err != nil {
		return err
	}
	return oneOf("direction", o.direction, inventory.DirectionAsc, inventory.DirectionDesc)
}

// mergeString sets *dst to value when the named flag was not set and value is not empty.
func mergeString(flags *pflag.FlagSet, name string, dst *string, value string) {
	if !flags.Changed(name) && value != "" {
		*dst = value
	}
}

// oneOf returns an error unless value is empty or one of allowed.
func oneOf(flag, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.Errorf("invalid --%s '%s' (must be one of '%s')", flag, value, strings.Join(allowed, "', '"))
}
