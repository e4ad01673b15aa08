package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

//go:embed bundles
var embeddedBundles embed.FS

const maxBundleSize = 1 << 20

// Loader fetches the raw key/value translations of one locale.
type Loader interface {
	Load(ctx context.Context, locale string) (map[string]string, error)
}

func decodeBundle(r io.Reader, locale string) (map[string]string, error) {
	var values map[string]string
	if err := json.NewDecoder(io.LimitReader(r, maxBundleSize)).Decode(&values); err != nil {
		return nil, fmt.Errorf("failed to decode %s bundle: %w", locale, err)
	}
	return values, nil
}

type embeddedLoader struct{}

// NewEmbeddedLoader serves the bundles compiled into the binary.
func NewEmbeddedLoader() Loader {
	return embeddedLoader{}
}

func (embeddedLoader) Load(_ context.Context, locale string) (map[string]string, error) {
	f, err := embeddedBundles.Open(path.Join("bundles", bundleDir(locale), bundleFile))
	if err != nil {
		return nil, fmt.Errorf("no embedded bundle for %s: %w", locale, err)
	}
	defer f.Close()
	return decodeBundle(f, locale)
}

type httpLoader struct {
	baseURL string
	version string
	http    *http.Client
}

// NewHTTPLoader fetches {baseURL}/{version}/nls/{locale}/ui-strings.json.
func NewHTTPLoader(baseURL, version string, httpClient *http.Client) Loader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &httpLoader{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		version: strings.Trim(version, "/"),
		http:    httpClient,
	}
}

func (l *httpLoader) Load(ctx context.Context, locale string) (map[string]string, error) {
	logger := zerolog.Ctx(ctx)

	url := l.baseURL + "/" + path.Join(l.version, "nls", bundleDir(locale), bundleFile)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create bundle request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s bundle: %w", locale, err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close bundle response body")
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to load %s bundle: status %d", locale, resp.StatusCode)
	}
	return decodeBundle(resp.Body, locale)
}

// S3GetObjectAPI is the part of the S3 client the loader needs.
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Config struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string // optional, for MinIO or LocalStack
}

type s3Loader struct {
	client S3GetObjectAPI
	bucket string
	prefix string
}

// NewS3Loader reads {prefix}{locale}/ui-strings.json from an S3 bucket.
func NewS3Loader(ctx context.Context, cfg S3Config) (Loader, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3LoaderWithClient(client, cfg.Bucket, cfg.Prefix), nil
}

func NewS3LoaderWithClient(client S3GetObjectAPI, bucket, prefix string) Loader {
	return &s3Loader{client: client, bucket: bucket, prefix: prefix}
}

func (l *s3Loader) Load(ctx context.Context, locale string) (map[string]string, error) {
	key := l.prefix + bundleDir(locale) + "/" + bundleFile
	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 get %s failed: %w", key, err)
	}
	defer out.Body.Close()
	return decodeBundle(out.Body, locale)
}
