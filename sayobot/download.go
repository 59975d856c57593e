package sayobot

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/MingxuanGame/SayobotAPI/utils"
	"github.com/dustin/go-humanize"
)

// Do downloads the resource into the download path and returns the name of
// the written file. The name always comes from the Content-Disposition
// header. A partially written file is left on disk when the transfer fails.
func (r *ResourceRequest) Do(ctx context.Context) (string, error) {
	resourceURL, err := r.URL(ctx)
	if err != nil {
		return "", err
	}
	resp, err := r.client.get(ctx, resourceURL, r.timeout)
	if err != nil {
		return "", err
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	filename, err := filenameFromContentDisposition(resp.Header.Get("Content-Disposition"))
	if err != nil {
		return "", err
	}

	path := filepath.Join(r.downloadPath, filename)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("[sayobot] failed to create file: %w", err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	written, err := io.Copy(file, resp.Body)
	if err != nil {
		return "", fmt.Errorf("[sayobot][%s] failed to write file: %w", filename, err)
	}
	err = file.Close()
	if err != nil {
		return "", fmt.Errorf("[sayobot][%s] failed to close file: %w", filename, err)
	}
	l := logger(ctx)
	l.Info().Int("sid", *r.sid).Str("type", r.resourceType.String()).
		Str("size", humanize.Bytes(uint64(written))).Msgf("Downloaded %s", filename)
	return filename, nil
}

// filenameFromContentDisposition extracts the filename*=utf-8''... parameter.
// The plain filename parameter is ignored.
func filenameFromContentDisposition(header string) (string, error) {
	for _, param := range strings.Split(header, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "filename*") {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		// charset'language'encoded
		parts := strings.SplitN(value, "'", 3)
		if len(parts) != 3 || !strings.EqualFold(parts[0], "utf-8") {
			continue
		}
		name, err := url.PathUnescape(parts[2])
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoFilename, err)
		}
		name = utils.SanitizeFileName(name)
		if name == "" || name == "." || name == ".." {
			break
		}
		return name, nil
	}
	return "", ErrNoFilename
}
