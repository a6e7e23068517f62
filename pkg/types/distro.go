package types

// Family groups distributions by package-manager lineage.
type Family string

const (
	FamilyRHEL    Family = "rhel"
	FamilyDebian  Family = "debian"
	FamilyUnknown Family = "unknown"
)

// Distro identifies a supported distribution. Detection happens once at
// bootstrap start and the value is read-only afterwards.
type Distro string

const (
	DistroUbuntu  Distro = "ubuntu"
	DistroRHEL    Distro = "rhel"
	DistroCentOS  Distro = "centos"
	DistroUnknown Distro = "unknown"
)

// Family returns the package-manager family for the distribution.
func (d Distro) Family() Family {
	switch d {
	case DistroRHEL, DistroCentOS:
		return FamilyRHEL
	case DistroUbuntu:
		return FamilyDebian
	default:
		return FamilyUnknown
	}
}
