package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/pfdlens/pfdlens/internal/ai"
	"github.com/pfdlens/pfdlens/internal/model"
	"github.com/pfdlens/pfdlens/internal/pkg/imageenc"
)

var ErrAIUnavailable = ai.ErrUnavailable

const systemInstruction = "Extract the chemical process equipment with unique identifiers and their connectivity from the process diagram."

// ExtractionService runs the whole analyze chain for one image: read and
// encode the file, send the fixed instruction plus image to the extractor,
// parse the schema-constrained reply. Any failure along the chain surfaces as
// a single error; nothing is retried.
type ExtractionService struct {
	extractor ai.IExtractor
	timeout   time.Duration
	prompt    string
	cache     *expirable.LRU[string, string]
}

func NewExtractionService(extractor ai.IExtractor, timeout time.Duration) *ExtractionService {
	return &ExtractionService{
		extractor: extractor,
		timeout:   timeout,
		prompt:    buildPrompt(),
		cache:     expirable.NewLRU[string, string](128, nil, 2*time.Hour),
	}
}

func buildPrompt() string {
	types := make([]string, 0, len(model.AllEquipmentTypes()))
	for _, t := range model.AllEquipmentTypes() {
		types = append(types, string(t))
	}
	return "View the process diagram image provided below. " +
		"Identify each instance of chemical process equipment and assign a unique identifier (for example, E1, E2, etc.) to each. " +
		fmt.Sprintf("Classify each instance using one of the following types: %s. ", strings.Join(types, ", ")) +
		"For any equipment that does not fall into these categories, use 'Other'. " +
		"Also, determine how these equipment instances are connected. " +
		"For each connection, provide an object with 'from_id', 'from_type', 'to_id', and 'to_type' corresponding to the unique identifiers and equipment types of the connected equipment. " +
		"Return a JSON object with two keys: 'equipment' and 'connections'."
}

func (s *ExtractionService) AnalyzeImage(ctx context.Context, imagePath string) (*model.ExtractionResult, error) {
	logger := logutil.GetLogger(ctx).With(zap.String("image", filepath.Base(imagePath)))
	data, mime, err := imageenc.Load(imagePath)
	if err != nil {
		logger.Error("load image failed", zap.Error(err))
		return nil, err
	}
	key := s.cacheKey(data)
	if cached, ok := s.cache.Get(key); ok {
		result, err := parseResult(cached)
		if err == nil {
			logger.Debug("extraction cache hit")
			return result, nil
		}
		s.cache.Remove(key)
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	raw, err := s.extractor.Extract(ctx, ai.ExtractRequest{
		System:    systemInstruction,
		Prompt:    s.prompt,
		ImageMIME: mime,
		ImageData: data,
	})
	if err != nil {
		logger.Error("extraction failed", zap.Error(err))
		return nil, err
	}
	result, err := parseResult(raw)
	if err != nil {
		logger.Error("parse extraction failed", zap.Error(err))
		return nil, err
	}
	s.cache.Add(key, raw)
	logger.Info("extraction done",
		zap.Int("equipment", len(result.Equipment)),
		zap.Int("connections", len(result.Connections)),
	)
	return result, nil
}

func (s *ExtractionService) cacheKey(data []byte) string {
	hash := sha256.Sum256(data)
	return "extract:" + hex.EncodeToString(hash[:])
}

// parseResult tolerates code-fenced replies and normalizes enum values; it
// performs no cross-validation between connections and equipment.
func parseResult(raw string) (*model.ExtractionResult, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return nil, fmt.Errorf("empty extraction response")
	}
	var result model.ExtractionResult
	if err := json.Unmarshal([]byte(clean), &result); err != nil {
		return nil, fmt.Errorf("parse extraction: %w", err)
	}
	result.Normalize()
	return &result, nil
}
