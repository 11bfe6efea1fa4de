package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Versioned static assets, relative to the static directory
const (
	AssetCSS     = "css/site.css"
	AssetJS      = "js/site.js"
	AssetFavicon = "images/favicon.svg"
)

var versionedAssets = []string{AssetCSS, AssetJS, AssetFavicon}

var (
	assetVersions     map[string]string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		assetVersions = loadAssetVersions(staticDir)
		log.Printf("[INFO] Asset versions initialized: %d files", len(assetVersions))
	})
}

func loadAssetVersions(staticDir string) map[string]string {
	versions := make(map[string]string, len(versionedAssets))
	for _, name := range versionedAssets {
		version := computeFileHash(filepath.Join(staticDir, name))
		if version == "" {
			version = "1"
		}
		versions[name] = version
	}
	return versions
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the version hash of a static asset, "1" if unknown
func AssetVersion(name string) string {
	if v, ok := assetVersions[name]; ok {
		return v
	}
	return "1"
}

// AssetURL returns the cache-busted URL of a static asset
func AssetURL(name string) string {
	return "/static/" + name + "?v=" + AssetVersion(name)
}
