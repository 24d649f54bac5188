package config

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/thomas-vilte/commitscope/internal/config"
	"github.com/thomas-vilte/commitscope/internal/i18n"
	"github.com/thomas-vilte/commitscope/internal/ui"
	"github.com/urfave/cli/v3"
)

type gitProbe interface {
	Version(ctx context.Context) (string, error)
	IsInsideWorkTree(ctx context.Context) bool
	GetRepoRoot(ctx context.Context) (string, error)
}

type scopeDetector interface {
	DetectDefaultScope(ctx context.Context) string
}

type DoctorCommand struct {
	git      gitProbe
	detector scopeDetector
}

func NewDoctorCommand(git gitProbe, detector scopeDetector) *DoctorCommand {
	return &DoctorCommand{git: git, detector: detector}
}

func (d *DoctorCommand) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "doctor",
		Aliases: []string{"dr"},
		Usage:   t.GetMessage("doctor_command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			return d.runHealthCheck(ctx, command.Root().Writer, t, cfg)
		},
	}
}

type healthCheck struct {
	name string
	fn   func(context.Context, *i18n.Translations, *config.Config) checkResult
}

type checkStatus int

const (
	checkStatusOK checkStatus = iota
	checkStatusWarning
	checkStatusError
)

type checkResult struct {
	status     checkStatus
	message    string
	suggestion string
}

func (d *DoctorCommand) runHealthCheck(ctx context.Context, w io.Writer, t *i18n.Translations, cfg *config.Config) error {
	ui.PrintSectionBanner(w, t.GetMessage("doctor_running_checks", 0, nil))

	checks := []healthCheck{
		{name: "doctor_check_git_installed", fn: d.checkGitInstalled},
		{name: "doctor_check_git_repo", fn: d.checkGitRepo},
		{name: "doctor_check_config_file", fn: d.checkConfigFile},
		{name: "doctor_check_scope", fn: d.checkScope},
	}

	var warnings, failures int
	for _, check := range checks {
		checkName := t.GetMessage(check.name, 0, nil)
		spinner := ui.NewSmartSpinner(w, checkName)
		spinner.Start()

		result := check.fn(ctx, t, cfg)

		switch result.status {
		case checkStatusOK:
			spinner.Success(checkName)
			if result.message != "" {
				ui.PrintInfo(w, "  "+result.message)
			}
		case checkStatusWarning:
			warnings++
			spinner.Warning(checkName)
			if result.message != "" {
				ui.PrintInfo(w, "  "+result.message)
			}
			if result.suggestion != "" {
				ui.PrintInfo(w, "  → "+result.suggestion)
			}
		case checkStatusError:
			failures++
			spinner.Error(checkName)
			if result.message != "" {
				ui.PrintInfo(w, "  "+result.message)
			}
			if result.suggestion != "" {
				ui.PrintInfo(w, "  → "+result.suggestion)
			}
		}
	}

	_, _ = fmt.Fprintln(w)
	ui.PrintSectionBanner(w, t.GetMessage("doctor_summary", 0, nil))

	switch {
	case failures > 0:
		ui.PrintError(w, t.GetMessage("doctor_has_errors", 0, nil))
	case warnings > 0:
		ui.PrintWarning(w, t.GetMessage("doctor_has_warnings", 0, nil))
	default:
		ui.PrintSuccess(w, t.GetMessage("doctor_all_good", 0, nil))
	}

	return nil
}

func (d *DoctorCommand) checkGitInstalled(ctx context.Context, t *i18n.Translations, _ *config.Config) checkResult {
	version, err := d.git.Version(ctx)
	if err != nil {
		return checkResult{
			status:     checkStatusError,
			message:    t.GetMessage("doctor_git_not_installed", 0, nil),
			suggestion: t.GetMessage("doctor_install_git_suggestion", 0, nil),
		}
	}
	return checkResult{status: checkStatusOK, message: fmt.Sprintf("(%s)", version)}
}

func (d *DoctorCommand) checkGitRepo(ctx context.Context, t *i18n.Translations, _ *config.Config) checkResult {
	if !d.git.IsInsideWorkTree(ctx) {
		return checkResult{
			status:     checkStatusWarning,
			message:    t.GetMessage("doctor_not_in_git_repo", 0, nil),
			suggestion: t.GetMessage("doctor_git_init_suggestion", 0, nil),
		}
	}
	root, err := d.git.GetRepoRoot(ctx)
	if err != nil {
		return checkResult{status: checkStatusOK}
	}
	return checkResult{status: checkStatusOK, message: fmt.Sprintf("(%s)", root)}
}

func (d *DoctorCommand) checkConfigFile(_ context.Context, t *i18n.Translations, cfg *config.Config) checkResult {
	if cfg.PathFile == "" || !fileExists(cfg.PathFile) {
		return checkResult{
			status:     checkStatusError,
			message:    t.GetMessage("doctor_config_not_found", 0, nil),
			suggestion: t.GetMessage("doctor_run_config_init", 0, nil),
		}
	}
	if _, err := config.LoadConfig(cfg.PathFile); err != nil {
		return checkResult{
			status:     checkStatusError,
			message:    t.GetMessage("doctor_config_invalid", 0, map[string]interface{}{"Error": err.Error()}),
			suggestion: t.GetMessage("doctor_run_config_init", 0, nil),
		}
	}
	return checkResult{status: checkStatusOK, message: fmt.Sprintf("(%s)", cfg.PathFile)}
}

func (d *DoctorCommand) checkScope(ctx context.Context, t *i18n.Translations, _ *config.Config) checkResult {
	scope := d.detector.DetectDefaultScope(ctx)
	if scope == "" {
		return checkResult{status: checkStatusOK, message: t.GetMessage("doctor_scope_none", 0, nil)}
	}
	return checkResult{
		status:  checkStatusOK,
		message: t.GetMessage("doctor_scope_detected", 0, map[string]interface{}{"Scope": scope}),
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
