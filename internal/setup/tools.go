package setup

// Volume describes one filesystem volume on the host.
type Volume struct {
	Letter     string
	Label      string
	FileSystem string
	SizeBytes  uint64
	FreeBytes  uint64
}

// Edition is one installable Windows edition inside an install image.
type Edition struct {
	Index int
	Name  string
}

// Tools is the host surface the guided flow drives. The production
// implementation shells out to PowerShell, DISM, and bcdboot; tests
// substitute fakes. The menu core never sees this interface, only the
// labels and command strings the flow derives from it.
type Tools interface {
	// PickImage returns candidate install images found on local volumes.
	PickImage() ([]string, error)
	// ListVolumes enumerates the volumes that carry a drive letter.
	ListVolumes() ([]Volume, error)
	// VolumeInfo looks up metadata for a drive letter like "D:".
	VolumeInfo(letter string) (Volume, error)
	// Mount attaches an ISO and returns the root it surfaced on.
	Mount(isoPath string) (string, error)
	// Dismount detaches a previously mounted ISO.
	Dismount(isoPath string) error
	// ListEditions enumerates the editions inside an install.wim or .esd.
	ListEditions(imagePath string) ([]Edition, error)
	// ApplyImage expands the edition at index onto the target volume.
	ApplyImage(imagePath string, index int, target string) error
	// ApplyUnattend stages an answer file into the applied image.
	ApplyUnattend(target, unattendPath string) error
	// AddBootEntry registers the applied image with the boot manager.
	AddBootEntry(target string) error
}
