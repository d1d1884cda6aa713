// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Surface the revision or module version baked into the binary.
package version

import "runtime/debug"

// GetVersion derives a version string from build info. Preference order:
// short VCS revision (with a dirty marker), the module version for
// tagged installs, then "dev" when neither is available.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	if revision, dirty := vcsState(info); revision != "" {
		if dirty {
			return revision + " (dirty)"
		}
		return revision
	}

	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	return "dev"
}

func vcsState(info *debug.BuildInfo) (revision string, dirty bool) {
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return revision, dirty
}
