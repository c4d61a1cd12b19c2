package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jinyuli/uvm/src/internal/ui"
	"github.com/schollz/progressbar/v3"
)

// DownloadFile streams a URL into destPath, drawing a progress bar. A
// partial file is removed when the transfer fails.
func (c *Client) DownloadFile(ctx context.Context, rawURL, destPath string) error {
	ui.Debug("Starting download: %s", rawURL)
	ui.Debug("Destination: %s", destPath)

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return err
	}

	resp, err := c.get(ctx, rawURL)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	size := resp.ContentLength
	if size > 0 {
		ui.Debug("Content-Length: %s", humanize.Bytes(uint64(size)))
	}

	out, err := os.Create(destPath)
	if err != nil {
		return err
	}

	var dst io.Writer = out
	if c.progress != nil {
		bar := progressbar.NewOptions64(
			size,
			progressbar.OptionSetWriter(c.progress),
			progressbar.OptionSetDescription("Downloading "+filepath.Base(destPath)),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(30),
			progressbar.OptionThrottle(65*time.Millisecond),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				_, _ = fmt.Fprintln(c.progress)
			}),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionFullWidth(),
			progressbar.OptionSetRenderBlankState(true),
		)
		dst = io.MultiWriter(out, bar)
	}

	written, copyErr := io.Copy(dst, resp.Body)
	closeErr := out.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(destPath)
		if copyErr != nil {
			ui.Debug("Download failed: %v", copyErr)
			return fmt.Errorf("download of %s interrupted: %w", rawURL, copyErr)
		}
		return closeErr
	}

	ui.Debug("Download complete: %s (%s)", destPath, humanize.Bytes(uint64(written)))
	return nil
}
