package publish

import (
	"context"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/vango-dev/formselect/internal/config"
	"github.com/vango-dev/formselect/internal/errors"
)

// ContentType is the content type fragments are stored with.
const ContentType = "text/html; charset=utf-8"

// Store is the interface for fragment storage backends.
type Store interface {
	// Put stores body under key and returns where it was written.
	Put(ctx context.Context, key string, body []byte) (location string, err error)
}

// Destination is a parsed publish target.
type Destination struct {
	// Scheme is "s3" or "file".
	Scheme string

	// Bucket is set for s3 destinations.
	Bucket string

	// Key is the object key (s3) or the file name (file).
	Key string

	// Dir is the directory that holds Key for file destinations.
	Dir string
}

// ParseDestination parses a file path or an s3://bucket/key URL.
func ParseDestination(dest string) (Destination, error) {
	if dest == "" {
		return Destination{}, errors.New("E080").WithDetail("Destination is empty")
	}

	if strings.HasPrefix(dest, "s3://") {
		u, err := url.Parse(dest)
		if err != nil {
			return Destination{}, errors.New("E080").Wrap(err)
		}
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return Destination{}, errors.New("E080").
				WithDetail("S3 destinations need a bucket and a key: " + dest).
				WithSuggestion("Use s3://bucket/path/to/fragment.html")
		}
		return Destination{Scheme: "s3", Bucket: u.Host, Key: key}, nil
	}

	dest = strings.TrimPrefix(dest, "file://")
	dir, file := filepath.Split(filepath.Clean(dest))
	if file == "" || file == "." || file == string(filepath.Separator) {
		return Destination{}, errors.New("E080").WithDetail("Destination has no file name: " + dest)
	}
	if dir == "" {
		dir = "."
	}
	return Destination{Scheme: "file", Dir: dir, Key: file}, nil
}

// String returns the destination in the form ParseDestination accepts.
func (d Destination) String() string {
	if d.Scheme == "s3" {
		return "s3://" + d.Bucket + "/" + d.Key
	}
	return filepath.Join(d.Dir, d.Key)
}

// Store returns the backend that writes to d.
func (d Destination) Store(opts S3Options) (Store, error) {
	switch d.Scheme {
	case "s3":
		return NewS3Store(NewS3Client(opts), d.Bucket, ""), nil
	case "file":
		return NewDiskStore(d.Dir)
	}
	return nil, errors.New("E080").WithDetail("Unknown scheme " + d.Scheme)
}

// FromConfig returns the store configured in cfg. S3 takes precedence over
// a local directory. It returns E082 when neither is configured.
func FromConfig(cfg config.PublishConfig) (Store, error) {
	if cfg.S3.Bucket != "" {
		client := NewS3Client(S3Options{
			Region:       cfg.S3.Region,
			Endpoint:     cfg.S3.Endpoint,
			UsePathStyle: cfg.S3.UsePathStyle,
		})
		return NewS3Store(client, cfg.S3.Bucket, cfg.S3.Prefix), nil
	}
	if cfg.Dir != "" {
		return NewDiskStore(cfg.Dir)
	}
	return nil, errors.New("E082")
}

// cleanKey normalizes key and rejects keys that escape the store root.
func cleanKey(key string) (string, error) {
	key = strings.ReplaceAll(key, "\\", "/")
	cleaned := path.Clean("/" + key)
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return "", errors.New("E080").WithDetail("Publish key is empty")
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", errors.New("E080").
				WithDetail("Publish key must not contain '..': " + key)
		}
	}
	return cleaned, nil
}
