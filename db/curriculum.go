package db

// Atlas search index configuration for the curriculum collections.
const (
	TextSearchIndexName = "curriculum_text_search"
	VectorIndexName     = "curriculum_vector_search"
	VectorPath          = "embedding"
)

var TextSearchPaths = []string{"text", "title", "subtopic"}

// CurriculumChunkModel is one syllabus passage in the knowledge base.
type CurriculumChunkModel struct {
	ChunkID   string `bson:"_id"`
	Subject   string `bson:"subject"`
	Grade     string `bson:"grade"`
	Topic     string `bson:"topic"`
	Subtopic  string `bson:"subtopic"`
	Title     string `bson:"title"`
	SourceURI string `bson:"sourceUri"`
	Text      string `bson:"text"`
}

func (m CurriculumChunkModel) Id() string {
	return m.ChunkID
}

func (m CurriculumChunkModel) CollectionName() string {
	return "curriculum_chunks"
}

// CurriculumAnnModel carries the embedding for ANN search over the same chunks.
type CurriculumAnnModel struct {
	ChunkID   string    `bson:"_id"`
	Embedding []float32 `bson:"embedding"`
}

func (m CurriculumAnnModel) Id() string {
	return m.ChunkID
}

func (m CurriculumAnnModel) CollectionName() string {
	return "curriculum_chunks_ann"
}
