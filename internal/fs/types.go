package fs

// FileMetadata describes a single filesystem entry, normalized across
// platforms. Timestamps are Unix seconds; fields that a platform cannot
// provide are nil rather than zero.
type FileMetadata struct {
	Path        string  `json:"path"`
	Name        string  `json:"name"`
	Size        uint64  `json:"size"`
	IsDirectory bool    `json:"is_directory"`
	IsFile      bool    `json:"is_file"`
	IsSymlink   bool    `json:"is_symlink"`
	Readonly    bool    `json:"readonly"`
	Hidden      bool    `json:"hidden"`
	Created     *int64  `json:"created,omitempty"`
	Modified    *int64  `json:"modified,omitempty"`
	Accessed    *int64  `json:"accessed,omitempty"`
	Permissions string  `json:"permissions"`
	Extension   *string `json:"extension,omitempty"`
	MimeType    *string `json:"mime_type,omitempty"`
}

// DirectoryEntry is one row of a directory listing. Size is present
// only for regular files; Icon is a UI hint keyed off the entry name.
type DirectoryEntry struct {
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	IsDirectory bool    `json:"is_directory"`
	Size        *uint64 `json:"size,omitempty"`
	Modified    *int64  `json:"modified,omitempty"`
	Permissions string  `json:"permissions"`
	Icon        string  `json:"icon"`
}

// DirectoryListing is the result of enumerating a directory. TotalCount
// counts the returned entries; HiddenCount counts hidden children seen
// during enumeration whether or not they were included.
type DirectoryListing struct {
	Path        string           `json:"path"`
	Entries     []DirectoryEntry `json:"entries"`
	TotalCount  int              `json:"total_count"`
	HiddenCount int              `json:"hidden_count"`
	Error       *string          `json:"error,omitempty"`
}

// FileContent carries the outcome of a read. Binary files report their
// true size with empty content and Encoding "binary"; text files carry
// utf-8 content with Encoding "utf-8".
type FileContent struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	Size     uint64 `json:"size"`
	IsBinary bool   `json:"is_binary"`
}

// OperationResult is the uniform acknowledgement for mutating
// operations. ErrorCode is set only on failure and holds a stable
// machine-readable code.
type OperationResult struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	Path      *string `json:"path,omitempty"`
	ErrorCode *string `json:"error_code,omitempty"`
}

// Config controls write and copy behavior. PreservePermissions and
// FollowSymlinks are accepted and persisted but not yet honored by any
// operation.
type Config struct {
	Overwrite           bool `json:"overwrite"`
	CreateParentDirs    bool `json:"create_parent_dirs"`
	PreservePermissions bool `json:"preserve_permissions"`
	FollowSymlinks      bool `json:"follow_symlinks"`
}

// DefaultConfig returns the service defaults: existing destinations
// are protected, parents created on demand.
func DefaultConfig() Config {
	return Config{
		Overwrite:           false,
		CreateParentDirs:    true,
		PreservePermissions: true,
		FollowSymlinks:      false,
	}
}

// WatchEventType classifies a filesystem change notification.
type WatchEventType string

const (
	EventCreated  WatchEventType = "created"
	EventModified WatchEventType = "modified"
	EventDeleted  WatchEventType = "deleted"
	EventRenamed  WatchEventType = "renamed"
	EventOther    WatchEventType = "other"
)

// WatchEvent is a single change notification from an active watch.
// Timestamp is Unix seconds at observation time.
type WatchEvent struct {
	Type      WatchEventType `json:"event_type"`
	Path      string         `json:"path"`
	Timestamp int64          `json:"timestamp"`
}
