// Package distro detects the host distribution from /etc/os-release.
package distro

import (
	"strings"

	"github.com/osa-tools/osa-bootstrap/pkg/logging"
	"github.com/osa-tools/osa-bootstrap/pkg/types"
)

// OSReleasePath is the standard os-release location.
const OSReleasePath = "/etc/os-release"

// Detect reads /etc/os-release and maps its ID (falling back to ID_LIKE) to
// a known distribution. Anything unrecognized, including an unreadable file,
// yields DistroUnknown; the caller decides whether that is fatal.
func Detect(fs types.FS) types.Distro {
	return DetectFrom(fs, OSReleasePath)
}

// DetectFrom is Detect with an explicit os-release path, for tests.
func DetectFrom(fs types.FS, path string) types.Distro {
	logger := logging.GetLogger("distro")

	data, err := fs.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Cannot read os-release")
		return types.DistroUnknown
	}

	fields := parseOSRelease(string(data))

	if d := fromID(fields["ID"]); d != types.DistroUnknown {
		logger.Debug().Str("distro", string(d)).Msg("Distribution detected from ID")
		return d
	}

	// ID_LIKE lists ancestor distributions, e.g. "rhel fedora" on CentOS.
	for _, like := range strings.Fields(fields["ID_LIKE"]) {
		if d := fromID(like); d != types.DistroUnknown {
			logger.Debug().
				Str("distro", string(d)).
				Str("id", fields["ID"]).
				Msg("Distribution detected from ID_LIKE")
			return d
		}
	}

	logger.Warn().Str("id", fields["ID"]).Msg("Unrecognized distribution")
	return types.DistroUnknown
}

func fromID(id string) types.Distro {
	switch strings.ToLower(id) {
	case "ubuntu":
		return types.DistroUbuntu
	case "rhel":
		return types.DistroRHEL
	case "centos":
		return types.DistroCentOS
	default:
		return types.DistroUnknown
	}
}

// parseOSRelease extracts KEY=value pairs, stripping optional quoting.
func parseOSRelease(content string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"'`)
		fields[key] = value
	}
	return fields
}
