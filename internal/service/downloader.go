package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dotX12/netkit/internal/domain"

	"github.com/rs/zerolog"
)

// DefaultHTTPTimeout is used when no positive timeout is configured
const DefaultHTTPTimeout = 30 * time.Second

// Downloader fetches newline-separated CIDR lists from URLs
type Downloader struct {
	logger     zerolog.Logger
	httpClient *http.Client
}

// NewDownloader creates a new downloader service
func NewDownloader(logger zerolog.Logger, timeout time.Duration) *Downloader {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	return &Downloader{
		logger: logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Download merges every URL into one CIDRList. URLs that fail are logged
// and skipped; an error is returned only when none could be fetched.
func (d *Downloader) Download(urls []string) (*domain.CIDRList, error) {
	d.logger.Info().Int("url_count", len(urls)).Msg("Downloading CIDR lists")

	list := domain.NewCIDRList()
	failed := 0

	for i, url := range urls {
		log := d.logger.With().Int("index", i+1).Int("total", len(urls)).Str("url", url).Logger()

		added, err := d.fetchInto(list, url)
		if err != nil {
			failed++
			log.Warn().Err(err).Msg("Failed to download list, skipping")
			continue
		}
		log.Info().Int("added", added).Msg("List downloaded")
	}

	if len(urls) > 0 && failed == len(urls) {
		return nil, fmt.Errorf("all %d downloads failed", failed)
	}

	for _, entry := range list.Rejected {
		d.logger.Warn().Str("entry", entry).Msg("Unrecognised list entry")
	}

	d.logger.Info().
		Int("ipv4_count", list.IPv4Count()).
		Int("ipv6_count", list.IPv6Count()).
		Int("rejected", list.RejectedCount()).
		Msg("Download finished")

	return list, nil
}

func (d *Downloader) fetchInto(list *domain.CIDRList, url string) (int, error) {
	resp, err := d.httpClient.Get(url)
	if err != nil {
		return 0, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return list.Load(resp.Body)
}
