package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/codingsince1985/checksum"
	"github.com/op/go-logging"
	"github.com/shini4i/fixture-gen/cmd/fixture-gen/utils"
	"github.com/shini4i/fixture-gen/internal/models"
	"github.com/shini4i/fixture-gen/internal/ports"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Dependencies aggregates runtime collaborators required by App.
type Dependencies struct {
	FS         afero.Fs
	CmdRunner  ports.CmdRunner
	FileReader ports.FileReader
	Globber    ports.Globber
	Logger     *logging.Logger
}

// App orchestrates the end-to-end fixture generation workflow.
type App struct {
	cfg        Config
	fs         afero.Fs
	cmdRunner  ports.CmdRunner
	fileReader ports.FileReader
	globber    ports.Globber
	logger     *logging.Logger
}

// New constructs an App using the supplied configuration and dependencies.
func New(cfg Config, deps Dependencies) (*App, error) {
	if cfg.WorkspaceDir == "" {
		return nil, errors.New("workspace directory must be provided")
	}

	if deps.FS == nil {
		deps.FS = afero.NewOsFs()
	}
	if deps.CmdRunner == nil {
		deps.CmdRunner = &utils.RealCmdRunner{}
	}
	if deps.FileReader == nil {
		deps.FileReader = utils.OsFileReader{}
	}
	if deps.Globber == nil {
		deps.Globber = utils.CustomGlobber{}
	}
	if deps.Logger == nil {
		return nil, errors.New("logger must be provided")
	}

	return &App{
		cfg:        cfg,
		fs:         deps.FS,
		cmdRunner:  deps.CmdRunner,
		fileReader: deps.FileReader,
		globber:    deps.Globber,
		logger:     deps.Logger,
	}, nil
}

// Run executes the capture workflow and returns any terminal error.
//
// Invocations are processed strictly sequentially in list order. A failure
// to capture one invocation is reported and the run moves on to the next
// entry; only workspace-level failures abort the run, since no subsequent
// write can succeed without a usable workspace.
func (a *App) Run() error {
	if err := a.loadManifest(); err != nil {
		return err
	}

	if err := resetWorkspace(a.fs, a.cfg.WorkspaceDir); err != nil {
		return err
	}

	a.logger.Infof("===> Capturing [%d] invocations of [%s] into [%s]",
		len(a.cfg.Invocations), cyan(a.cfg.Executable), a.cfg.WorkspaceDir)

	var failed int

	for _, invocation := range a.cfg.Invocations {
		if err := a.processInvocation(invocation); err != nil {
			if errors.Is(err, errWriteFixture) {
				return err
			}
			a.logger.Errorf("The command >>%s %s<< failed: %s", a.cfg.Executable, invocation, err)
			failed++
		}
	}

	a.reportFixtures()

	if failed > 0 {
		return fmt.Errorf("%d of %d invocations failed", failed, len(a.cfg.Invocations))
	}

	return nil
}

var errWriteFixture = errors.New("fixture write failed")

// processInvocation captures one invocation and persists the result.
func (a *App) processInvocation(invocation string) error {
	a.logger.Infof("===> Capturing output of: [%s]", cyan(fmt.Sprintf("%s %s", a.cfg.Executable, invocation)))

	text, err := a.capture(invocation)
	switch {
	case errors.Is(err, errNoOutput):
		a.logger.Warningf("Invocation [%s] produced no output, writing an empty fixture", yellow(invocation))
		text = ""
	case err != nil:
		return err
	}

	if err := a.writeFixture(invocation, text); err != nil {
		return fmt.Errorf("%w: %s", errWriteFixture, err)
	}

	a.logFixtureChecksum(filepath.Join(a.cfg.WorkspaceDir, fixtureFileName(invocation)))

	return nil
}

// loadManifest replaces the built-in invocation list with the content of
// the configured manifest file, when one is set.
func (a *App) loadManifest() error {
	if a.cfg.ManifestFile == "" {
		return nil
	}

	a.logger.Debugf("Loading invocation manifest from [%s]", a.cfg.ManifestFile)

	content := a.fileReader.ReadFile(a.cfg.ManifestFile)
	if len(content) == 0 {
		return fmt.Errorf("failed to load manifest [%s]: %w", a.cfg.ManifestFile, models.EmptyManifestError)
	}

	manifest := models.Manifest{}
	if err := yaml.Unmarshal(content, &manifest); err != nil {
		return fmt.Errorf("failed to load manifest [%s]: %w", a.cfg.ManifestFile, err)
	}

	if err := manifest.Validate(); err != nil {
		return fmt.Errorf("failed to load manifest [%s]: %w", a.cfg.ManifestFile, err)
	}

	if manifest.Executable != "" {
		a.cfg.Executable = manifest.Executable
	}
	a.cfg.Invocations = manifest.Invocations

	return nil
}

// logFixtureChecksum records the fixture's sha256 at debug level so drift
// between tool versions is easy to eyeball across runs.
func (a *App) logFixtureChecksum(path string) {
	sha256sum, err := checksum.SHA256sum(path)
	if err != nil {
		a.logger.Debugf("Could not checksum [%s]: %s", path, err)
		return
	}

	a.logger.Debugf("▶ %s sha256:%s", path, sha256sum)
}

// reportFixtures lists the fixture files present in the workspace after
// the run.
func (a *App) reportFixtures() {
	files, err := a.globber.Glob(filepath.Join(a.cfg.WorkspaceDir, "*"+fixtureFileSuffix))
	if err != nil {
		a.logger.Debugf("Could not list workspace fixtures: %s", err)
		return
	}

	if len(files) == 0 {
		a.logger.Warning("No fixture files were produced")
		return
	}

	a.logger.Info("===> Produced the following fixture files")
	for _, file := range files {
		a.logger.Infof("▶ %s", file)
	}
}
