package template

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// filePerm is the mode of every written output.
const filePerm fs.FileMode = 0o644

// Deployer persists rendered outputs into an output directory.
type Deployer interface {
	// Deploy writes every output to outputDir/<output.Path> and returns
	// the paths written, in order. The first failure aborts the remaining
	// writes; files already written are left in place.
	Deploy(ctx context.Context, outputDir string, outputs []Output) ([]string, error)
}

// FileWriter is the file-writing collaborator used by the Deployer.
type FileWriter interface {
	// WriteFile makes path hold data. The file must not be observable
	// before its content is complete.
	WriteFile(path string, data []byte, perm fs.FileMode) error
}

// DeployerOption configures a Deployer.
type DeployerOption func(*deployer)

// WithForce lets the deployer replace existing files.
func WithForce(force bool) DeployerOption {
	return func(d *deployer) {
		d.force = force
	}
}

// WithFileWriter replaces the default atomic file writer.
func WithFileWriter(w FileWriter) DeployerOption {
	return func(d *deployer) {
		d.writer = w
	}
}

// WithDeployLogger sets the deployer logger.
func WithDeployLogger(logger *slog.Logger) DeployerOption {
	return func(d *deployer) {
		if logger != nil {
			d.logger = logger
		}
	}
}

type deployer struct {
	writer FileWriter
	force  bool
	logger *slog.Logger
}

// NewDeployer creates a Deployer writing through an AtomicWriter.
func NewDeployer(opts ...DeployerOption) Deployer {
	d := &deployer{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.writer == nil {
		d.writer = &AtomicWriter{Overwrite: d.force}
	}
	return d
}

// Deploy writes outputs in order, checking for cancellation before each file.
func (d *deployer) Deploy(ctx context.Context, outputDir string, outputs []Output) ([]string, error) {
	outputDir = filepath.Clean(outputDir)
	written := make([]string, 0, len(outputs))

	for _, out := range outputs {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		if err := validateDeployPath(outputDir, out.Path); err != nil {
			return written, err
		}

		destPath := filepath.Join(outputDir, filepath.FromSlash(out.Path))

		if err := d.writer.WriteFile(destPath, out.Contents, filePerm); err != nil {
			return written, &WriteError{Path: destPath, Err: err}
		}

		d.logger.Debug("file written", "path", destPath, "bytes", len(out.Contents))
		written = append(written, destPath)
	}

	return written, nil
}

// validateDeployPath ensures an output path does not escape outputDir.
func validateDeployPath(outputDir, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if relPath == "" || cleaned == "." {
		return &WriteError{Path: relPath, Err: ErrPathTraversal}
	}
	if filepath.IsAbs(cleaned) {
		return &WriteError{Path: relPath, Err: ErrPathTraversal}
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return &WriteError{Path: relPath, Err: ErrPathTraversal}
	}

	absRoot, err := filepath.Abs(outputDir)
	if err != nil {
		return &WriteError{Path: outputDir, Err: err}
	}
	absPath := filepath.Join(absRoot, cleaned)
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return &WriteError{Path: relPath, Err: ErrPathTraversal}
	}
	return nil
}

// AtomicWriter writes each file to a temporary sibling and then links it
// into place, so a file is never visible half-written. Without Overwrite
// an existing destination fails with fs.ErrExist.
type AtomicWriter struct {
	Overwrite bool
}

// WriteFile implements FileWriter.
func (w *AtomicWriter) WriteFile(path string, data []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if w.Overwrite {
		return os.Rename(tmpName, path)
	}
	return os.Link(tmpName, path)
}
