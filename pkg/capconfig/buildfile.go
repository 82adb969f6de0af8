// SPDX-License-Identifier: MPL-2.0

package capconfig

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jcbuild/jcbuild/pkg/cueutil"

	"github.com/pelletier/go-toml/v2"
)

const (
	// BuildFileCUE is the default build file name.
	BuildFileCUE = "jcbuild.cue"
	// BuildFileTOML is the TOML alternative to BuildFileCUE.
	BuildFileTOML = "jcbuild.toml"
)

var (
	//go:embed jcbuild_schema.cue
	buildSchema string

	// ErrUnsupportedBuildFile is returned for build files that are neither CUE nor TOML.
	ErrUnsupportedBuildFile = errors.New("unsupported build file format")
)

type (
	// buildFile mirrors #Build. Flags are pointers so that an absent key keeps
	// the model default instead of decoding as false.
	buildFile struct {
		Toolkit                      string    `json:"jckit"`
		ClassPath                    string    `json:"class_path"`
		LogLevel                     string    `json:"log_level"`
		InstallArgs                  []string  `json:"install_args"`
		AddSurrogateSimulatorRepo    *bool     `json:"add_surrogate_simulator_repo"`
		AddImplicitSimulatorTestDeps *bool     `json:"add_implicit_simulator_test_deps"`
		Caps                         []capFile `json:"caps"`
	}

	capFile struct {
		Toolkit      string         `json:"jckit"`
		Output       string         `json:"output"`
		PackageName  string         `json:"package"`
		AID          string         `json:"aid"`
		Version      string         `json:"version"`
		Sources      string         `json:"sources"`
		Export       string         `json:"export"`
		TargetSDK    string         `json:"target_sdk"`
		Verify       *bool          `json:"verify"`
		Debug        bool           `json:"debug"`
		Ints         bool           `json:"ints"`
		Applets      []appletFile   `json:"applets"`
		Dependencies *dependencyRef `json:"dependencies"`
	}

	appletFile struct {
		Class string `json:"class"`
		AID   string `json:"aid"`
	}

	dependencyRef struct {
		Local []localImportFile `json:"local"`
	}

	localImportFile struct {
		Exps string `json:"exps"`
		Jar  string `json:"jar"`
	}
)

// Load reads a build file through fsys and returns the unvalidated model it
// declares. The format is chosen by extension: .cue or .toml. Reading
// through fsys keeps the build file in the same place the validator checks
// toolkit paths.
func Load(fsys SourceFS, path string) (*RootConfig, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read build file at %s: %w", path, err)
	}
	return LoadBytes(data, path)
}

// LoadBytes decodes build file content. path is used for format detection
// and error messages only.
func LoadBytes(data []byte, path string) (*RootConfig, error) {
	var (
		bf  *buildFile
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cue":
		bf, err = decodeCUE(data, path)
	case ".toml":
		bf, err = decodeTOML(data, path)
	default:
		return nil, fmt.Errorf("%w: %s (want .cue or .toml)", ErrUnsupportedBuildFile, path)
	}
	if err != nil {
		return nil, err
	}

	cfg := NewRootConfig()
	bf.applyTo(cfg)
	return cfg, nil
}

func decodeCUE(data []byte, path string) (*buildFile, error) {
	res, err := cueutil.ParseAndDecodeString[buildFile](buildSchema, data, "#Build", cueutil.WithFilename(path))
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// decodeTOML parses TOML into plain values and checks them against #Build,
// so both formats accept exactly the same documents.
func decodeTOML(data []byte, path string) (*buildFile, error) {
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return nil, err
	}

	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%s:%d:%d: %s", path, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	res, err := cueutil.DecodeValue[buildFile](buildSchema, doc, "#Build", cueutil.WithFilename(path))
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// applyTo populates cfg through the model's append operations, in file order.
func (bf *buildFile) applyTo(cfg *RootConfig) {
	cfg.SetToolkitPath(bf.Toolkit)
	cfg.SetClassPath(bf.ClassPath)
	cfg.SetLogLevel(bf.LogLevel)
	for _, arg := range bf.InstallArgs {
		cfg.AddInstallArg(arg)
	}
	if bf.AddSurrogateSimulatorRepo != nil {
		cfg.AddSurrogateSimulatorRepo = *bf.AddSurrogateSimulatorRepo
	}
	if bf.AddImplicitSimulatorTestDeps != nil {
		cfg.AddImplicitSimulatorTestDeps = *bf.AddImplicitSimulatorTestDeps
	}

	for _, cf := range bf.Caps {
		spec := cfg.AddCap()
		spec.SetToolkitPath(cf.Toolkit)
		spec.SetOutput(cf.Output)
		spec.PackageName = cf.PackageName
		spec.AID = cf.AID
		spec.Version = cf.Version
		spec.Sources = cf.Sources
		spec.Export = cf.Export
		spec.TargetSDK = cf.TargetSDK
		if cf.Verify != nil {
			spec.Verify = *cf.Verify
		}
		spec.Debug = cf.Debug
		spec.Ints = cf.Ints

		for _, af := range cf.Applets {
			applet := spec.AddApplet()
			applet.SetClassName(af.Class)
			applet.AID = af.AID
		}

		if cf.Dependencies != nil {
			deps := spec.Dependency()
			for _, lf := range cf.Dependencies.Local {
				imp := deps.AddLocalImport()
				imp.SetExportsPath(lf.Exps)
				imp.SetJarPath(lf.Jar)
			}
		}
	}
}
