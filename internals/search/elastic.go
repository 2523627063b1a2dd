package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"

	"wasitku_backend/internals/configs"
)

const ReviewIndex = "referee_reviews"

// Client pembungkus tipis go-elasticsearch untuk pencarian ulasan wasit.
// Dibiarkan nil kalau Elasticsearch tidak dikonfigurasi: semua pemanggil
// wajib cek nil dan memperlakukan pencarian sebagai fitur opsional.
type Client struct {
	es *elasticsearch.Client
}

// Connect membuat client dari ELASTICSEARCH_URL. Gagal konek tidak fatal:
// aplikasi tetap jalan tanpa pencarian.
func Connect() *Client {
	if configs.ElasticURL == "" {
		log.Println("[INFO] ELASTICSEARCH_URL kosong, pencarian ulasan nonaktif")
		return nil
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{configs.ElasticURL},
	})
	if err != nil {
		log.Printf("[WARN] gagal membuat client Elasticsearch: %v", err)
		return nil
	}

	res, err := es.Info()
	if err != nil {
		log.Printf("[WARN] Elasticsearch tidak terjangkau: %v", err)
		return nil
	}
	defer res.Body.Close()

	log.Println("✅ Terhubung ke Elasticsearch:", configs.ElasticURL)
	return &Client{es: es}
}

// EnsureReviewIndex membuat index ulasan kalau belum ada.
func (c *Client) EnsureReviewIndex(ctx context.Context) error {
	if c == nil {
		return nil
	}

	res, err := c.es.Indices.Exists([]string{ReviewIndex},
		c.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode == 200 {
		return nil
	}

	mapping := `{
		"mappings": {
			"properties": {
				"review_id":        {"type": "keyword"},
				"review_wasit_id":  {"type": "keyword"},
				"review_rating":    {"type": "integer"},
				"review_comment":   {"type": "text"},
				"review_author_name": {"type": "text"},
				"review_created_at": {"type": "date"}
			}
		}
	}`
	create, err := c.es.Indices.Create(ReviewIndex,
		c.es.Indices.Create.WithContext(ctx),
		c.es.Indices.Create.WithBody(strings.NewReader(mapping)))
	if err != nil {
		return err
	}
	defer create.Body.Close()
	if create.IsError() {
		return fmt.Errorf("buat index %s: %s", ReviewIndex, create.String())
	}
	log.Println("✅ Index", ReviewIndex, "dibuat")
	return nil
}

// ReviewDocument dokumen ulasan yang diindeks.
type ReviewDocument struct {
	ReviewID   string `json:"review_id"`
	WasitID    string `json:"review_wasit_id"`
	Rating     int    `json:"review_rating"`
	Comment    string `json:"review_comment"`
	AuthorName string `json:"review_author_name"`
	CreatedAt  string `json:"review_created_at"`
}

// IndexReview mengindeks satu ulasan (upsert by id).
func (c *Client) IndexReview(ctx context.Context, doc ReviewDocument) error {
	if c == nil {
		return nil
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	res, err := c.es.Index(ReviewIndex, bytes.NewReader(body),
		c.es.Index.WithContext(ctx),
		c.es.Index.WithDocumentID(doc.ReviewID))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("indeks ulasan %s: %s", doc.ReviewID, res.String())
	}
	return nil
}

// SearchReviews mencari ulasan berdasar teks komentar/nama penulis,
// opsional dibatasi satu wasit.
func (c *Client) SearchReviews(ctx context.Context, query, wasitID string, size int) ([]ReviewDocument, error) {
	if c == nil {
		return nil, fmt.Errorf("pencarian tidak tersedia")
	}
	if size <= 0 || size > 50 {
		size = 20
	}

	must := []map[string]interface{}{
		{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"review_comment", "review_author_name"},
			},
		},
	}
	if wasitID != "" {
		must = append(must, map[string]interface{}{
			"term": map[string]interface{}{"review_wasit_id": wasitID},
		})
	}

	body, err := json.Marshal(map[string]interface{}{
		"size":  size,
		"query": map[string]interface{}{"bool": map[string]interface{}{"must": must}},
		"sort":  []map[string]interface{}{{"review_created_at": map[string]string{"order": "desc"}}},
	})
	if err != nil {
		return nil, err
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(ReviewIndex),
		c.es.Search.WithBody(bytes.NewReader(body)))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("pencarian gagal: %s", res.String())
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source ReviewDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	out := make([]ReviewDocument, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		out = append(out, hit.Source)
	}
	return out, nil
}
