package postwave

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
)

// MaxLocalFileSize is the size ceiling for locally-sourced attachments.
const MaxLocalFileSize = 40 * 1024 * 1024 // 40 MiB

// deniedExtensions lists file extensions the API refuses to attach,
// preserved verbatim from the provider's published list.
var deniedExtensions = []string{
	"adp", "ade", "app", "asp", "bas", "bat", "cer", "chm", "cmd", "com",
	"cpl", "crt", "csh", "der", "exe", "fxp", "gadget", "hlp", "hta", "inf",
	"ins", "isp", "its", "js", "jse", "ksh", "lib", "lnk", "mad", "maf",
	"mag", "mam", "maq", "mar", "mas", "mat", "mau", "mav", "maw", "mda",
	"mdb", "mde", "mdt", "mdw", "mdz", "msc", "msh", "msh1", "msh2",
	"mshxml", "msh1xml", "msh2xml", "msi", "msp", "mst", "ops", "pcd",
	"pif", "plg", "prf", "prg", "pst", "reg", "scf", "scr", "sct", "shb",
	"shs", "sys", "ps1", "ps1xml", "ps2", "ps2xml", "psc1", "psc2", "tmp",
	"url", "vb", "vbe", "vbs", "vps", "vsmacros", "vss", "vst", "vsw",
	"vxd", "ws", "wsc", "wsf", "wsh", "xnk",
}

var deniedExtensionSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(deniedExtensions))
	for _, ext := range deniedExtensions {
		set[ext] = struct{}{}
	}
	return set
}()

// localFS is the filesystem used by AttachmentFromFile unless overridden
// with WithFS. It is nil on js/wasm, where no local filesystem exists.
var localFS = defaultLocalFS()

func defaultLocalFS() afero.Fs {
	if runtime.GOOS == "js" {
		return nil
	}
	return afero.NewOsFs()
}

// extensionOf returns the lowercased substring after the last dot,
// or "" when the name has no extension.
func extensionOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

func checkExtension(name string) error {
	ext := extensionOf(name)
	if _, denied := deniedExtensionSet[ext]; denied {
		return &ValidationError{Message: fmt.Sprintf("attachment extension %q is not allowed", ext)}
	}
	return nil
}

// AttachmentSource is the origin of attachment bytes: a remote URL fetched
// server-side, or inline Base64-encoded content provided by the caller.
// Exactly one field must be set.
type AttachmentSource struct {
	// URL is a publicly reachable location the API downloads the file from.
	URL string
	// Content is the Base64-encoded file content.
	Content string
}

// Attachment is an immutable email attachment. Construct one with
// NewAttachment or AttachmentFromFile.
type Attachment struct {
	url      string
	content  string
	filename string
}

// NewAttachment creates an attachment from the given source.
// It fails with a *ValidationError when the source does not have exactly
// one field set, or when the filename's extension is denied.
func NewAttachment(source AttachmentSource, filename string) (*Attachment, error) {
	if (source.URL == "") == (source.Content == "") {
		return nil, &ValidationError{Message: "attachment source must be exactly one of a remote URL or inline content"}
	}
	if err := checkExtension(filename); err != nil {
		return nil, err
	}
	return &Attachment{
		url:      source.URL,
		content:  source.Content,
		filename: filename,
	}, nil
}

// AttachmentFromFile reads a file from the local filesystem and returns an
// inline-content attachment. The filename defaults to the path's basename
// unless WithFilename overrides it.
//
// It fails with ErrLocalFilesUnsupported on platforms without a local
// filesystem, with a *NotFoundError when the path does not exist, and with
// a *ValidationError when the path's extension is denied or the file
// exceeds MaxLocalFileSize.
func AttachmentFromFile(path string, opts ...FileOption) (*Attachment, error) {
	cfg := &fileConfig{fs: localFS}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.fs == nil {
		return nil, ErrLocalFilesUnsupported
	}

	// The path's extension is checked before any filename override applies.
	if err := checkExtension(path); err != nil {
		return nil, err
	}

	info, err := cfg.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if info.Size() > MaxLocalFileSize {
		return nil, &ValidationError{Message: fmt.Sprintf("file %s exceeds the %d byte attachment limit", path, MaxLocalFileSize)}
	}

	data, err := afero.ReadFile(cfg.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	filename := cfg.filename
	if filename == "" {
		filename = filepath.Base(path)
	}

	return NewAttachment(AttachmentSource{
		Content: base64.StdEncoding.EncodeToString(data),
	}, filename)
}

// Filename returns the attachment's filename.
func (a *Attachment) Filename() string {
	return a.filename
}

// URL returns the remote URL, or "" for inline attachments.
func (a *Attachment) URL() string {
	return a.url
}

// Content returns the Base64-encoded content, or "" for remote attachments.
func (a *Attachment) Content() string {
	return a.content
}

// MarshalJSON emits the wire form: the filename plus exactly one of
// "path" (remote URL) or "content" (inline Base64). The absent source
// key is omitted entirely, never serialized as null.
func (a *Attachment) MarshalJSON() ([]byte, error) {
	payload := map[string]string{
		"filename": a.filename,
	}
	if a.url != "" {
		payload["path"] = a.url
	} else {
		payload["content"] = a.content
	}
	return json.Marshal(payload)
}
