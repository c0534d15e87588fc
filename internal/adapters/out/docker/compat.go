package docker

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/bnema/localcontainers/internal/domain"
)

// CheckCompatibility reports whether the daemon described by engine serves
// apiVersion, the version segment this client prefixes to every path.
func CheckCompatibility(engine EngineVersion, apiVersion string) error {
	want, err := semver.NewVersion(strings.TrimPrefix(apiVersion, "v"))
	if err != nil {
		return domain.WrapRuntimeError(fmt.Sprintf("invalid client API version %q", apiVersion), err)
	}
	if engine.APIVersion == "" {
		return domain.RuntimeError("engine did not report an API version")
	}

	bounds := "<= " + engine.APIVersion
	if engine.MinAPIVersion != "" {
		bounds = ">= " + engine.MinAPIVersion + ", " + bounds
	}
	constraint, err := semver.NewConstraint(bounds)
	if err != nil {
		return domain.WrapRuntimeError(fmt.Sprintf("invalid engine API range %q", bounds), err)
	}

	if !constraint.Check(want) {
		return domain.RuntimeError(fmt.Sprintf(
			"engine %s supports API %s, client requires %s",
			engine.Version, apiRange(engine), strings.TrimPrefix(apiVersion, "v"),
		))
	}
	return nil
}

func apiRange(engine EngineVersion) string {
	if engine.MinAPIVersion == "" {
		return "up to " + engine.APIVersion
	}
	return engine.MinAPIVersion + "-" + engine.APIVersion
}
