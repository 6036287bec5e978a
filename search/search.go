package search

import (
	"context"
	"slices"

	"github.com/SaiNageswarS/go-api-boot/embed"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"github.com/SaiNageswarS/go-collection-boot/ds"
	"github.com/smartclass-ai/content-gen/db"
	"github.com/smartclass-ai/content-gen/rag"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// search parameters.
const (
	rrfK               = 60  // “dampening” constant from the RRF paper
	textSearchWeight   = 1.0 // optional per-engine weights
	vectorSearchWeight = 1.0
	engineK            = 30 // # of hits to keep from each engine
)

// CurriculumSearch is the Mongo-backed knowledge base. Term search and vector
// search run per query and their rankings are fused with Reciprocal-Rank
// Fusion; rank is used instead of raw scores because BM25 and cosine scores
// live on incomparable scales while relative rank is stable across index
// rebuilds.
type CurriculumSearch struct {
	embedder         embed.Embedder
	chunkRepository  odm.OdmCollectionInterface[db.CurriculumChunkModel]
	vectorRepository odm.OdmCollectionInterface[db.CurriculumAnnModel]
}

func NewCurriculumSearch(
	chunkRepository odm.OdmCollectionInterface[db.CurriculumChunkModel],
	vectorRepository odm.OdmCollectionInterface[db.CurriculumAnnModel],
	embedder embed.Embedder,
) *CurriculumSearch {
	return &CurriculumSearch{
		chunkRepository:  chunkRepository,
		vectorRepository: vectorRepository,
		embedder:         embedder,
	}
}

// Search implements rag.Searcher. Results are ordered by fused score, best
// first, truncated to k.
func (s *CurriculumSearch) Search(ctx context.Context, query string, k int) ([]rag.Document, error) {
	//----------------------------------------------------------------------
	// 1. Fire the two independent searches in parallel
	//----------------------------------------------------------------------
	textTask := s.chunkRepository.
		TermSearch(ctx, query, odm.TermSearchParams{
			IndexName: db.TextSearchIndexName,
			Path:      db.TextSearchPaths,
			Limit:     engineK,
		})

	emb, err := async.Await(s.embedder.GetEmbedding(ctx, query, embed.WithTask("retrieval.query")))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "embed: %v", err)
	}

	vecTask := s.vectorRepository.
		VectorSearch(ctx, emb, odm.VectorSearchParams{
			IndexName:     db.VectorIndexName,
			Path:          db.VectorPath,
			K:             engineK,
			NumCandidates: 100,
		})

	//----------------------------------------------------------------------
	// 2. Convert each result list → id→rank    (rank ∈ {1,2,…})
	//----------------------------------------------------------------------
	textRanks, cache, err := collectTextSearchRanks(textTask)
	if err != nil {
		logger.Error("text search failed", zap.Error(err))
	}

	vecRanks, err := collectVectorSearchRanks(vecTask)
	if err != nil {
		logger.Error("vector search failed", zap.Error(err))
	}

	if len(textRanks) == 0 && len(vecRanks) == 0 {
		return nil, nil
	}

	//----------------------------------------------------------------------
	// 3. Reciprocal-Rank Fusion
	//     score(id) = Σ  weight_e / (rrfK + rank_e(id))
	//----------------------------------------------------------------------
	combined := make(map[string]float64)
	for id, r := range textRanks {
		combined[id] = textSearchWeight / float64(rrfK+r)
	}
	for id, r := range vecRanks {
		combined[id] += vectorSearchWeight / float64(rrfK+r)
	}

	//----------------------------------------------------------------------
	// 4. Keep the top-k with a min-heap (higher RRF score = better)
	//----------------------------------------------------------------------
	type pair struct {
		id    string
		score float64
	}

	h := ds.NewMinHeap(func(a, b pair) bool { return a.score < b.score })
	for id, sc := range combined {
		h.Push(pair{id, sc})
		if h.Len() > k {
			h.Pop()
		}
	}

	ranked := h.ToSortedSlice()
	slices.Reverse(ranked) // highest score first

	ids := make([]string, 0, len(ranked))
	scores := make(map[string]float64, len(ranked))
	for _, p := range ranked {
		ids = append(ids, p.id)
		scores[p.id] = p.score
	}

	//----------------------------------------------------------------------
	// 5. Materialise the chunks
	//----------------------------------------------------------------------
	chunks := s.fetchChunksByIds(ctx, cache, ids)
	docs := make([]rag.Document, 0, len(chunks))
	for _, ch := range chunks {
		docs = append(docs, rag.Document{
			ID:    ch.ChunkID,
			Text:  ch.Text,
			Score: scores[ch.ChunkID],
			Metadata: map[string]string{
				"subject":   ch.Subject,
				"grade":     ch.Grade,
				"topic":     ch.Topic,
				"subtopic":  ch.Subtopic,
				"title":     ch.Title,
				"sourceUri": ch.SourceURI,
			},
		})
	}
	return docs, nil
}

// Sources lists the distinct syllabus source URIs in the knowledge base.
func (s *CurriculumSearch) Sources(ctx context.Context) ([]string, error) {
	var sources []string
	if err := s.chunkRepository.DistinctInto(ctx, "sourceUri", nil, &sources); err != nil {
		return nil, status.Errorf(codes.Internal, "distinct sources: %v", err)
	}
	return sources, nil
}

// Returns id→rank (1-based) **and** a cache of the full chunk docs.
func collectTextSearchRanks(
	task <-chan async.Result[[]odm.SearchHit[db.CurriculumChunkModel]],
) (map[string]int, map[string]*db.CurriculumChunkModel, error) {

	ranks := make(map[string]int) // id → rank
	cache := make(map[string]*db.CurriculumChunkModel)

	hits, err := async.Await(task)
	if err != nil {
		return ranks, cache, status.Errorf(codes.Internal, "await text hits: %v", err)
	}

	for i, h := range hits {
		id := h.Doc.Id()
		if _, seen := ranks[id]; !seen { // keep first (best-ranked) hit
			ranks[id] = i + 1  // 1-based rank
			cache[id] = &h.Doc // stash full doc for later
		}
	}
	return ranks, cache, nil
}

// Returns id→rank (1-based) for vector search hits.
func collectVectorSearchRanks(
	task <-chan async.Result[[]odm.SearchHit[db.CurriculumAnnModel]],
) (map[string]int, error) {

	ranks := make(map[string]int)

	hits, err := async.Await(task)
	if err != nil {
		return ranks, status.Errorf(codes.Internal, "await vector hits: %v", err)
	}

	for i, h := range hits {
		id := h.Doc.Id()
		if _, seen := ranks[id]; !seen {
			ranks[id] = i + 1
		}
	}
	return ranks, nil
}

func (s *CurriculumSearch) fetchChunksByIds(ctx context.Context, cache map[string]*db.CurriculumChunkModel, rankedIds []string) []*db.CurriculumChunkModel {

	if len(rankedIds) == 0 {
		return nil
	}

	/* 1. build map[id]Chunk from cache ------------------------ */
	chunkByID := make(map[string]*db.CurriculumChunkModel, len(rankedIds))
	var missing []string

	for _, id := range rankedIds {
		if c, ok := cache[id]; ok {
			chunkByID[id] = c
		} else {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		/* 2. fetch all missing in **one** DB round-trip -------- */
		dbChunks, err := async.Await(
			s.chunkRepository.Find(ctx, bson.M{"_id": bson.M{"$in": missing}}, nil, 0, 0),
		)
		if err != nil {
			logger.Error("Failed to fetch chunks from database", zap.Error(err))
			// we still return whatever we already have
		}
		for _, ch := range dbChunks {
			chunkByID[ch.ChunkID] = &ch
		}
	}

	/* 3. assemble slice in ranking order ---------------------- */
	ordered := make([]*db.CurriculumChunkModel, 0, len(rankedIds))
	for _, id := range rankedIds {
		if ch, ok := chunkByID[id]; ok {
			ordered = append(ordered, ch)
		} else {
			logger.Info("chunk id missing after lookup", zap.String("id", id))
		}
	}

	return ordered
}
