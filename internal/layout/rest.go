package layout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/NajwaAuliaa/internalAssistant-AICompanyAssist/pkg/utils"
)

// defaultPageRange caps analyzed pages as a cost control, not an
// architectural limit; override via Config.PageRange.
const defaultPageRange = "1-15"

// RESTAnalyzer calls a document-layout analysis HTTP service (an Azure
// Document Intelligence compatible endpoint) in prebuilt-layout mode.
type RESTAnalyzer struct {
	endpoint  string
	apiKey    string
	model     string
	pageRange string
	client    *http.Client
	logger    *zap.Logger
}

// RESTConfig holds layout service settings.
type RESTConfig struct {
	Endpoint  string
	APIKey    string
	Model     string // analysis model name; "prebuilt-layout" when empty
	PageRange string // e.g. "1-15"; defaultPageRange when empty
	Timeout   time.Duration
	Logger    *zap.Logger
}

// NewRESTAnalyzer creates a layout service client.
func NewRESTAnalyzer(cfg *RESTConfig) *RESTAnalyzer {
	model := cfg.Model
	if model == "" {
		model = "prebuilt-layout"
	}
	pageRange := cfg.PageRange
	if pageRange == "" {
		pageRange = defaultPageRange
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	return &RESTAnalyzer{
		endpoint:  cfg.Endpoint,
		apiKey:    cfg.APIKey,
		model:     model,
		pageRange: pageRange,
		client:    &http.Client{Timeout: timeout},
		logger:    cfg.Logger,
	}
}

// Analyze posts the document bytes and returns parsed paragraphs and tables.
func (a *RESTAnalyzer) Analyze(ctx context.Context, content []byte, ext string) (*Result, error) {
	u := fmt.Sprintf("%s/documentModels/%s:analyze?pages=%s",
		a.endpoint, url.PathEscape(a.model), url.QueryEscape(a.pageRange))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if a.apiKey != "" {
		req.Header.Set("Ocp-Apim-Subscription-Key", a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("layout service request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read layout response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("layout service status %d: %s", resp.StatusCode, utils.Truncate(string(body), 200))
	}

	var parsed struct {
		AnalyzeResult Result `json:"analyzeResult"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		// Some deployments return the result at the top level.
		var direct Result
		if err2 := json.Unmarshal(body, &direct); err2 != nil {
			return nil, fmt.Errorf("decode layout response: %w", err)
		}
		parsed.AnalyzeResult = direct
	}
	if a.logger != nil {
		a.logger.Debug("layout analysis complete",
			zap.Int("paragraphs", len(parsed.AnalyzeResult.Paragraphs)),
			zap.Int("tables", len(parsed.AnalyzeResult.Tables)))
	}
	return &parsed.AnalyzeResult, nil
}
