// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"slices"

	"github.com/jcbuild/jcbuild/pkg/capconfig"

	"github.com/charmbracelet/glamour"
)

const (
	BuildFileNotFoundId Id = iota + 1
	BuildFileParseErrorId
	ConfigLoadFailedId
	MissingToolkitId
	InvalidToolkitPathId
	NoCapsReferencedId
	MissingOutputId
	MissingAppletClassId
	MissingImportFieldsId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is Markdown guidance text.
	MarkdownMsg string

	// Issue is a catalog entry with Markdown guidance for one failure class.
	Issue struct {
		id          Id
		name        string
		mdMsg       MarkdownMsg
		suggestions []string
	}
)

var (
	render = glamour.Render

	kindIssues = map[capconfig.ErrorKind]Id{
		capconfig.MissingToolkit:      MissingToolkitId,
		capconfig.InvalidToolkitPath:  InvalidToolkitPathId,
		capconfig.NoCapsReferenced:    NoCapsReferencedId,
		capconfig.MissingOutput:       MissingOutputId,
		capconfig.MissingAppletClass:  MissingAppletClassId,
		capconfig.MissingImportFields: MissingImportFieldsId,
	}

	issues = map[Id]*Issue{
		BuildFileNotFoundId: {
			id:   BuildFileNotFoundId,
			name: "build-file-not-found",
			mdMsg: `
# No build file found!

jcbuild looks for ` + "`jcbuild.cue`" + `, then ` + "`jcbuild.toml`" + `, in the current directory.

## Things you can try:
- Pass the file explicitly:
~~~
$ jcbuild validate path/to/jcbuild.cue
~~~
- Set ` + "`build_file`" + ` in your jcbuild config`,
			suggestions: []string{
				"Run jcbuild from the directory containing jcbuild.cue",
				"Pass the build file path as an argument",
			},
		},
		BuildFileParseErrorId: {
			id:   BuildFileParseErrorId,
			name: "build-file-parse-error",
			mdMsg: `
# The build file could not be parsed!

The error above points at the offending field, e.g. ` + "`caps[0].aid`" + `.

## Example build file:
~~~cue
jckit: "sdks/jc305u3"
caps: [{
	output:  "build/wallet.cap"
	package: "com.example.wallet"
	aid:     "A000000617"
	version: "1.0"
	applets: [{class: "com.example.wallet.Wallet", aid: "A00000061701"}]
}]
~~~`,
			suggestions: []string{
				"Check the field named in the error against the build file schema",
				"AIDs are 5 to 16 bytes of hex",
			},
		},
		ConfigLoadFailedId: {
			id:   ConfigLoadFailedId,
			name: "config-load-failed",
			mdMsg: `
# Failed to load the jcbuild configuration!

## Things you can try:
- Show the file jcbuild reads:
~~~
$ jcbuild config path
~~~
- Recreate it with defaults:
~~~
$ jcbuild config init
~~~`,
			suggestions: []string{
				"Check that the file contains valid CUE syntax",
				"Verify the configuration values match the expected schema",
				"Run 'jcbuild config path' to locate the config file",
			},
		},
		MissingToolkitId: {
			id:   MissingToolkitId,
			name: capconfig.MissingToolkit.String(),
			mdMsg: `
# No Java Card toolkit configured!

A cap needs an SDK. It is taken from, in order:
1. the root ` + "`jckit`" + ` of the build file
2. the ` + "`JC_HOME`" + ` environment variable
3. the cap's own ` + "`jckit`" + `

## Things you can try:
~~~
$ export JC_HOME=/opt/java_card_kit-3_0_5
~~~`,
			suggestions: []string{
				"Set jckit at the root of the build file",
				"Export " + capconfig.ToolkitEnvVar + " pointing at your SDK",
			},
		},
		InvalidToolkitPathId: {
			id:   InvalidToolkitPathId,
			name: capconfig.InvalidToolkitPath.String(),
			mdMsg: `
# Toolkit path does not exist!

Relative ` + "`jckit`" + ` paths are resolved against the directory jcbuild runs in.
A root ` + "`jckit`" + ` is checked even when ` + "`JC_HOME`" + ` is set.`,
			suggestions: []string{
				"Check the jckit path for typos",
				"Use an absolute path or run jcbuild from the project root",
			},
		},
		NoCapsReferencedId: {
			id:   NoCapsReferencedId,
			name: capconfig.NoCapsReferenced.String(),
			mdMsg: `
# No caps were referenced!

The build file must declare at least one entry in ` + "`caps`" + `.`,
			suggestions: []string{"Add a caps entry with an output and at least one applet"},
		},
		MissingOutputId: {
			id:   MissingOutputId,
			name: capconfig.MissingOutput.String(),
			mdMsg: `
# Cap output is required!

Every cap needs an ` + "`output`" + ` naming the .cap file to produce.`,
			suggestions: []string{"Set output on the cap named in the error"},
		},
		MissingAppletClassId: {
			id:   MissingAppletClassId,
			name: capconfig.MissingAppletClass.String(),
			mdMsg: `
# Applet class is required!

Each entry in ` + "`applets`" + ` needs a fully qualified ` + "`class`" + `.`,
			suggestions: []string{"Set class on the applet named in the error, or remove the empty entry"},
		},
		MissingImportFieldsId: {
			id:   MissingImportFieldsId,
			name: capconfig.MissingImportFields.String(),
			mdMsg: `
# Local import is incomplete!

A local import needs both the export directory (` + "`exps`" + `) and the jar (` + "`jar`" + `).
~~~cue
dependencies: local: [{exps: "libs/exp", jar: "libs/lib.jar"}]
~~~`,
			suggestions: []string{"Set both exps and jar on the import named in the error"},
		},
	}
)

// Id returns the entry's identifier.
func (i *Issue) Id() Id {
	return i.id
}

// Name returns the entry's kebab-case name, as accepted by `jcbuild explain`.
func (i *Issue) Name() string {
	return i.name
}

// MarkdownMsg returns the raw Markdown guidance.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Suggestions returns the short remediation hints for this entry.
func (i *Issue) Suggestions() []string {
	return slices.Clone(i.suggestions)
}

// Render renders the guidance with the glamour style at stylePath
// ("auto", "dark", "light", "notty", or a JSON style file).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return out
}

// Get returns the entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}

// Lookup returns the entry with the given name, or nil.
func Lookup(name string) *Issue {
	for _, i := range issues {
		if i.name == name {
			return i
		}
	}
	return nil
}

// ForKind returns the entry describing a validation failure kind.
func ForKind(kind capconfig.ErrorKind) *Issue {
	return issues[kindIssues[kind]]
}

// FromValidation wraps a *capconfig.ConfigError from validating the build
// file at resource into an ActionableError carrying the matching
// suggestions. Other errors are returned unchanged.
func FromValidation(err error, resource string) error {
	var cfgErr *capconfig.ConfigError
	if !errors.As(err, &cfgErr) {
		return err
	}
	ctx := NewErrorContext().
		WithOperation("validate build file").
		WithResource(resource).
		Wrap(err)
	if entry := ForKind(cfgErr.Kind); entry != nil {
		ctx.WithSuggestions(entry.suggestions...)
		ctx.WithSuggestion("Run 'jcbuild explain " + entry.name + "' for details")
	}
	return ctx.BuildError()
}
