package refresh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"presence/internal/parser"
	"presence/internal/providers"
	"presence/internal/refresh/interfaces"
	"presence/internal/structures"
	"time"
)

const maxMetadataSize = 16 << 20 // 16 MB

var (
	ErrNoRemote = errors.New("remote metadata url not configured")
	ErrNoTarget = errors.New("local metadata path not configured")
)

// XMLRefresher downloads the metadata feed and replaces the local copy.
// The local file is only touched once a complete, decodable document is in hand.
type XMLRefresher struct {
	conf   *structures.Config
	client *http.Client
	logger providers.Logger
}

func NewXMLRefresher(conf *structures.Config, logger providers.Logger) interfaces.RefresherInterface {
	return &XMLRefresher{
		conf:   conf,
		client: &http.Client{},
		logger: logger,
	}
}

func (x *XMLRefresher) Refresh(ctx context.Context) error {
	if x.conf.Data.RemoteXml == "" {
		return ErrNoRemote
	}
	if x.conf.Data.XmlPath == "" {
		return ErrNoTarget
	}

	body, err := x.download(ctx)
	if err != nil {
		return err
	}
	meta, err := parser.DecodeMetadata(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("remote metadata rejected: %w", err)
	}

	if err = writeFile(x.conf.Data.XmlPath, body); err != nil {
		return fmt.Errorf("unable to store metadata: %w", err)
	}
	x.logger.Infof(providers.TypeApp, "Metadata refreshed from %s: %d users", x.conf.Data.RemoteXml, len(meta.Profiles))
	return nil
}

func (x *XMLRefresher) download(ctx context.Context) ([]byte, error) {
	timeout := x.conf.Fetch.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, x.conf.Data.RemoteXml, nil)
	if err != nil {
		return nil, err
	}
	resp, err := x.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMetadataSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxMetadataSize {
		return nil, fmt.Errorf("metadata larger than %d bytes", maxMetadataSize)
	}
	return body, nil
}

// writeFile replaces fileName through a temporary sibling and a rename.
func writeFile(fileName string, data []byte) error {
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}
