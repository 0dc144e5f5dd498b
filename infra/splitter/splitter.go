// Package splitter partitions source documents into bounded-size
// fragments so each extraction call stays under the upstream page limit.
package splitter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/cloudywalnut/ai-production-scheduler/core/logger"
)

// Config defines splitting parameters.
type Config struct {
	// MaxPages is the number of PDF pages per fragment.
	MaxPages int `json:"max_pages"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.MaxPages <= 0 {
		c.MaxPages = 12
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.MaxPages < 0 {
		return fmt.Errorf("max_pages must not be negative, got %d", c.MaxPages)
	}
	return nil
}

var pdfMagic = []byte("%PDF-")

// Splitter cuts PDF documents into page-range fragments. Non-PDF input
// passes through untouched as a single fragment: plain-text screenplays
// are small enough for one extraction call.
type Splitter struct {
	maxPages int
	conf     *pdfmodel.Configuration
	log      logger.Logger
}

// New creates a Splitter from the configuration.
func New(cfg Config, log logger.Logger) (*Splitter, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed
	return &Splitter{maxPages: cfg.MaxPages, conf: conf, log: log}, nil
}

// Split partitions the document into fragments of at most MaxPages pages.
// A PDF the splitter cannot read is passed through whole; the extractor
// decides what to make of it.
func (s *Splitter) Split(doc []byte) ([][]byte, error) {
	if !bytes.HasPrefix(doc, pdfMagic) {
		return [][]byte{doc}, nil
	}

	rs := bytes.NewReader(doc)
	pages, err := api.PageCount(rs, s.conf)
	if err != nil {
		if s.log != nil {
			s.log.Warnf("page count failed, passing document through whole: %v", err)
		}
		return [][]byte{doc}, nil
	}
	if pages <= s.maxPages {
		return [][]byte{doc}, nil
	}

	var fragments [][]byte
	for start := 1; start <= pages; start += s.maxPages {
		end := start + s.maxPages - 1
		if end > pages {
			end = pages
		}
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		sel := []string{fmt.Sprintf("%d-%d", start, end)}
		if err := api.Trim(rs, &buf, sel, s.conf); err != nil {
			return nil, fmt.Errorf("trim pages %d-%d: %w", start, end, err)
		}
		fragments = append(fragments, buf.Bytes())
	}
	return fragments, nil
}
