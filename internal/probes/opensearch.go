package probes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"

	"github.com/hazz-dev/svccheck/internal/checker"
	"github.com/hazz-dev/svccheck/internal/config"
)

const (
	opensearchService = "OpenSearch"
	opensearchClient  = "go-opensearch"
)

type healthDocument struct {
	Source string `json:"source"`
	ID     string `json:"id"`
}

// OpenSearch checks an OpenSearch node: it creates an index, indexes one
// document and fetches it back.
func OpenSearch(env config.Env) checker.Check {
	host := config.String(env, "OPENSEARCH_HOST", "opensearch")
	port := config.Port(env, "OPENSEARCH_PORT", 9200)

	return checker.Check{
		Service: opensearchService,
		Client:  opensearchClient,
		Gate: checker.Gate{
			Flag:           "ENABLE_OPENSEARCH",
			DefaultEnabled: false,
			Host:           host,
			Port:           port,
		},
		Probe: func(ctx context.Context) (string, error) {
			client, err := opensearchapi.NewClient(opensearchapi.Config{
				Client: opensearch.Config{
					Addresses: []string{"http://" + hostPort(host, port)},
				},
			})
			if err != nil {
				return "", fmt.Errorf("creating client: %w", err)
			}

			index := healthName(uuid.New())
			if _, err := client.Indices.Create(ctx, opensearchapi.IndicesCreateReq{Index: index}); err != nil {
				return "", fmt.Errorf("creating index %s: %w", index, err)
			}

			doc := healthDocument{Source: opensearchClient, ID: uuid.New().String()}
			body, err := json.Marshal(doc)
			if err != nil {
				return "", fmt.Errorf("encoding document: %w", err)
			}

			_, err = client.Index(ctx, opensearchapi.IndexReq{
				Index:      index,
				DocumentID: doc.ID,
				Body:       bytes.NewReader(body),
				Params:     opensearchapi.IndexParams{Refresh: "true"},
			})
			if err != nil {
				return "", fmt.Errorf("indexing document %s: %w", doc.ID, err)
			}

			resp, err := client.Document.Get(ctx, opensearchapi.DocumentGetReq{Index: index, DocumentID: doc.ID})
			if err != nil {
				return "", fmt.Errorf("getting document %s: %w", doc.ID, err)
			}
			if !resp.Found {
				return "", fmt.Errorf("document %s not found in index %s", doc.ID, index)
			}

			var got healthDocument
			if err := json.Unmarshal(resp.Source, &got); err != nil {
				return "", fmt.Errorf("decoding document %s: %w", doc.ID, err)
			}
			if got != doc {
				return "", fmt.Errorf("unexpected document: got %+v, want %+v", got, doc)
			}

			return fmt.Sprintf("Indexed document %s in index %s", doc.ID, index), nil
		},
	}
}
