// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"slices"

	"github.com/jcbuild/jcbuild/internal/issue"
	"github.com/jcbuild/jcbuild/pkg/capconfig"
	"github.com/jcbuild/jcbuild/pkg/types"

	"github.com/spf13/cobra"
)

// buildTarget is a build file that loaded and passed validation.
type buildTarget struct {
	path      string
	model     *capconfig.RootConfig
	validator *capconfig.Validator
}

// findBuildFile returns arg when given, otherwise the first existing file
// among the configured build file, jcbuild.cue and jcbuild.toml.
func (s *session) findBuildFile(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}

	candidates := buildFileCandidates(s.cfg.BuildFile)
	for _, c := range candidates {
		if s.app.FS.PathExists(c) {
			s.logger.Debug("found build file", "path", c)
			return c, nil
		}
	}

	entry := issue.Get(issue.BuildFileNotFoundId)
	return "", issue.NewErrorContext().
		WithOperation("find build file").
		WithResource(s.cfg.BuildFile).
		WithSuggestions(entry.Suggestions()...).
		Wrap(fmt.Errorf("none of %v exist", candidates)).
		BuildError()
}

// buildFileCandidates lists the discovery order without duplicates.
func buildFileCandidates(configured string) []string {
	var candidates []string
	for _, c := range []string{configured, capconfig.BuildFileCUE, capconfig.BuildFileTOML} {
		if c != "" && !slices.Contains(candidates, c) {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// loadBuild finds, decodes and validates the build file. Failures are
// reported on stderr and returned as an *ExitError.
func (s *session) loadBuild(cmd *cobra.Command, arg string) (*buildTarget, error) {
	path, err := s.findBuildFile(arg)
	if err != nil {
		return nil, reportFailure(cmd, s.app, types.ExitBadBuildFile, err)
	}

	model, err := capconfig.Load(s.app.FS, path)
	if err != nil {
		entry := issue.Get(issue.BuildFileParseErrorId)
		return nil, reportFailure(cmd, s.app, types.ExitBadBuildFile, issue.NewErrorContext().
			WithOperation("load build file").
			WithResource(path).
			WithSuggestions(entry.Suggestions()...).
			Wrap(err).
			BuildError())
	}

	v := s.validator()
	if err := v.Validate(model); err != nil {
		return nil, reportFailure(cmd, s.app, types.ExitInvalidBuild, issue.FromValidation(err, path))
	}
	s.logger.Debug("build file is valid", "path", path, "caps", len(model.Caps))

	return &buildTarget{path: path, model: model, validator: v}, nil
}
