package recommender

// Suggestion ответ текстового классификатора: рекомендованная категория
// и краткое объяснение
type Suggestion struct {
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

// Модели запроса/ответа провайдера (Gemini-совместимый REST API)

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	Temperature      float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}
