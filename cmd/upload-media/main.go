package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"strings"
	"syscall"

	"advibes_site/config"
	"advibes_site/services"

	"github.com/spf13/cobra"
)

type uploadOptions struct {
	dir    string
	prefix string
	dryRun bool
	local  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &uploadOptions{}

	cmd := &cobra.Command{
		Use:   "upload-media",
		Short: "Upload portfolio media to the configured storage bucket",
		Long: `Walks the media directory and uploads every file to Cloudflare R2 under
the same relative key the catalog uses, so portfolio thumbnails resolve to the
bucket's public URL once R2_PUBLIC_URL is set.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if opts.dir == "" {
				opts.dir = cfg.MediaDir
			}
			return runUpload(cmd.Context(), cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "media directory to upload (default MEDIA_DIR)")
	cmd.Flags().StringVarP(&opts.prefix, "prefix", "p", "", "key prefix inside the bucket")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "list what would be uploaded without uploading")
	cmd.Flags().BoolVar(&opts.local, "allow-local", false, "run even when R2 is not configured")

	return cmd
}

func runUpload(ctx context.Context, cfg *config.Config, opts *uploadOptions) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.HasR2() && !opts.local {
		return fmt.Errorf("R2 storage is not configured (set R2_ACCOUNT_ID, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_BUCKET_NAME)")
	}

	services.InitializeStorage(cfg)
	if _, isLocal := services.Storage.(*services.LocalStorage); isLocal && !opts.local {
		return fmt.Errorf("R2 storage unavailable, refusing to copy media onto itself")
	}

	var uploaded, skipped int
	var total int64

	err := filepath.WalkDir(opts.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			skipped++
			return nil
		}

		key, err := mediaKey(opts.dir, p, opts.prefix)
		if err != nil {
			return err
		}
		contentType := services.MediaContentType(d.Name())

		if opts.dryRun {
			log.Printf("[DRY RUN] %s -> %s (%s)", p, key, contentType)
			uploaded++
			return nil
		}

		size, err := uploadFile(ctx, p, key, contentType)
		if err != nil {
			return err
		}
		uploaded++
		total += size
		return nil
	})
	if err != nil {
		return fmt.Errorf("upload stopped after %d files: %w", uploaded, err)
	}

	log.Printf("✅ Uploaded %d files (%d bytes), skipped %d", uploaded, total, skipped)
	return nil
}

func uploadFile(ctx context.Context, p, key, contentType string) (int64, error) {
	f, err := os.Open(p)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", p, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", p, err)
	}

	res, err := services.Storage.UploadReader(ctx, f, key, contentType, info.Size())
	if err != nil {
		return 0, fmt.Errorf("failed to upload %s: %w", p, err)
	}
	log.Printf("Uploaded %s -> %s", key, res.URL)
	return res.FileSize, nil
}

// mediaKey is the slash-separated path of p relative to root, under prefix
func mediaKey(root, p, prefix string) (string, error) {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", p, err)
	}
	key := filepath.ToSlash(rel)
	if prefix != "" {
		key = path.Join(strings.Trim(prefix, "/"), key)
	}
	return key, nil
}
