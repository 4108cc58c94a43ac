package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
)

// DevVersion is the version string of builds made without release ldflags.
const DevVersion = "(devel)"

// maxArchiveSize caps a release download.
const maxArchiveSize = 256 << 20

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// Stage names a step of Update, in the order they run.
type Stage string

const (
	StageCheck    Stage = "check"
	StageVerify   Stage = "verify"
	StageDownload Stage = "download"
	StageExtract  Stage = "extract"
	StageApply    Stage = "apply"
	StageDone     Stage = "done"
)

type UpdateInput struct {
	CurrentVersion string
	// TargetVersion skips the release lookup when set.
	TargetVersion string
}

type UpdateProgress struct {
	Stage   Stage
	Message string
}

// Asset is the release archive for one platform.
type Asset struct {
	Name   string
	Binary string
	zipped bool
}

// PlatformAsset names the archive published for goos/goarch.
func PlatformAsset(goos, goarch string) (Asset, error) {
	arch, ok := releaseArch[goarch]
	if goos == "darwin" {
		return Asset{Name: "hemepath_Darwin_all.tar.gz", Binary: "hemepath"}, nil
	}
	if !ok {
		return Asset{}, fmt.Errorf("unsupported architecture: %s", goarch)
	}
	switch goos {
	case "linux":
		return Asset{Name: "hemepath_Linux_" + arch + ".tar.gz", Binary: "hemepath"}, nil
	case "windows":
		return Asset{Name: "hemepath_Windows_" + arch + ".zip", Binary: "hemepath.exe", zipped: true}, nil
	}
	return Asset{}, fmt.Errorf("unsupported operating system: %s", goos)
}

var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

// Update downloads the target release, checks it against the release's
// checksums.txt and swaps it in for the running executable.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if progress == nil {
		progress = func(UpdateProgress) {}
	}
	report := func(s Stage, format string, args ...any) {
		progress(UpdateProgress{Stage: s, Message: fmt.Sprintf(format, args...)})
	}

	if input.CurrentVersion == DevVersion {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		report(StageCheck, "Checking for latest version...")
		res, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !res.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = res.LatestVersion
	}

	asset, err := PlatformAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	report(StageVerify, "Fetching checksums for %s...", tag)
	sums, err := c.fetch(ctx, c.assetURL(tag, "checksums.txt"), 1<<20)
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := parseChecksums(sums)[asset.Name]
	if !ok {
		return fmt.Errorf("no checksum for %s in checksums.txt", asset.Name)
	}

	report(StageDownload, "Downloading %s...", asset.Name)
	archive, err := c.fetch(ctx, c.assetURL(tag, asset.Name), maxArchiveSize)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}
	if err := verifyChecksum(archive, want); err != nil {
		return err
	}

	report(StageExtract, "Extracting %s...", asset.Binary)
	bin, err := asset.extract(archive)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	report(StageApply, "Replacing executable...")
	exe, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	if err := replaceExecutable(exe, bin); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	report(StageDone, "Updated to %s", tag)
	return nil
}

func (c *Checker) assetURL(tag, name string) string {
	return strings.TrimRight(c.downloadBaseURL, "/") + "/" +
		path.Join(c.owner, c.repo, "releases", "download", tag, name)
}

// fetch GETs url and reads at most limit bytes of the body.
func (c *Checker) fetch(ctx context.Context, url string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%s is larger than %d bytes", url, limit)
	}
	return body, nil
}

// parseChecksums reads sha256sum output. A leading "*" on the file name
// (binary mode) is dropped and digests are lowercased.
func parseChecksums(data []byte) map[string]string {
	sums := make(map[string]string)
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		sums[strings.TrimPrefix(fields[1], "*")] = strings.ToLower(fields[0])
	}
	return sums
}

func verifyChecksum(data []byte, want string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != strings.ToLower(want) {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, want, got)
	}
	return nil
}

func (a Asset) extract(archive []byte) ([]byte, error) {
	if a.zipped {
		return fromZip(archive, a.Binary)
	}
	return fromTarGz(archive, a.Binary)
}

func fromTarGz(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("binary %q not found in archive", name)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && path.Base(hdr.Name) == name {
			return io.ReadAll(io.LimitReader(tr, maxArchiveSize))
		}
	}
}

func fromZip(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || path.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(io.LimitReader(rc, maxArchiveSize))
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// replaceExecutable writes bin next to target and renames it into place,
// keeping target's permissions. The old binary is moved aside first so a
// failed rename can be rolled back.
func replaceExecutable(target string, bin []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}
	dir := filepath.Dir(target)

	tmp, err := os.CreateTemp(dir, ".hemepath-new-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(bin); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}

	backup := target + ".old"
	_ = os.Remove(backup)
	if err := os.Rename(target, backup); err != nil {
		return fmt.Errorf("move old binary aside: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		if rerr := os.Rename(backup, target); rerr != nil {
			return fmt.Errorf("rename: %w (restore failed: %v)", err, rerr)
		}
		return fmt.Errorf("rename: %w", err)
	}
	// Windows cannot delete a running executable; the leftover is harmless.
	_ = os.Remove(backup)
	return nil
}
