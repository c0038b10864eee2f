package shuffle

import "errors"

var (
	// ErrDirectoryNotFound is returned when the project root does not exist
	// or is not a directory.
	ErrDirectoryNotFound = errors.New("directory not found")
	// ErrBackupNotFound is returned by Restore when there is no backup tree.
	ErrBackupNotFound = errors.New("no backup folder found")
	// ErrInvalidRatio is returned when the shuffle percentage is outside of
	// [1, 100].
	ErrInvalidRatio = errors.New("shuffle percentage must be between 1 and 100")
	// ErrStagingExists is returned when a group's staging directory is
	// already present before the group is applied.
	ErrStagingExists = errors.New("staging directory already exists")
)
