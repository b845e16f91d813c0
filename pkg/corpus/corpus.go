package corpus

// Document is one titled reference article. Documents are immutable once the
// corpus is loaded; the ID is the document's position in the corpus and is
// used as the retrieval key by the vector index.
type Document struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Corpus is the fixed set of reference documents grounding the assistant.
type Corpus struct {
	docs []Document
}

// New builds a corpus from the given documents, assigning positional ids.
func New(docs []Document) *Corpus {
	owned := make([]Document, len(docs))
	copy(owned, docs)
	for i := range owned {
		owned[i].ID = i
	}
	return &Corpus{docs: owned}
}

// Default returns the curated TerraPeak reference corpus.
func Default() *Corpus {
	return New(defaultDocuments)
}

// Size returns the number of documents.
func (c *Corpus) Size() int {
	return len(c.docs)
}

// Get returns the document at position id.
func (c *Corpus) Get(id int) (Document, bool) {
	if id < 0 || id >= len(c.docs) {
		return Document{}, false
	}
	return c.docs[id], true
}

// All returns the documents in corpus order.
func (c *Corpus) All() []Document {
	out := make([]Document, len(c.docs))
	copy(out, c.docs)
	return out
}

var defaultDocuments = []Document{
	{
		Title: "TerraPeak Consulting Officially Launches",
		Content: `TerraPeak Consulting officially launches, offering expert-led market expansion, sales growth strategies, and practical AI integration to global businesses. Specializing in APAC market entry and growth support for Asian SMEs and family businesses, TerraPeak aims to redefine strategic growth.
Founded by experienced market and sales strategists, TerraPeak combines exploration with sustainable, strategic growth. With proven expertise, TerraPeak guides companies in harnessing AI to improve sales and operational efficiency.
Core Offerings:
- Expert Market Expansion into APAC
- Revenue-Driven Sales Growth
- Seamless AI Integration
- Family Business Growth & Transformation
Committed to responsible, ethical, and sustainable growth, TerraPeak offers tailored solutions ensuring long-term success and resilience. Businesses seeking expansion, transformation, and innovation are encouraged to reach out via connect@terrapeakgroup.com.`,
	},
	{
		Title: "Unlocking Opportunities: Doing Business in Asia for Western Companies",
		Content: `Asia's markets are diverse, each with distinct cultures, regulations, and consumer preferences. Successful market entry requires careful planning and cultural understanding.
1. Recognize Diversity: Each Asian market differs significantly. Independent research on consumer preferences, economic conditions, and regulatory landscapes is crucial.
2. Understand Cultural Nuances: Personal relationships and trust-building are essential. Face-to-face interactions and awareness of local business etiquette enhance partnership opportunities.
3. Navigate Regulations: Legal frameworks vary widely. Consulting local legal experts helps ensure compliance and protection, particularly for intellectual property rights.
4. Adapt Products and Services: Localization involves more than translation; products, pricing strategies, and marketing channels should align with local tastes and usage patterns.
5. Leverage Local Partnerships: Strategic partnerships offer invaluable market insights, reduce entry costs, and minimize risks associated with unfamiliar markets.
6. Invest in Talent and Training: Hiring skilled local talent and providing basic cross-cultural training ensures smooth operations and effective market penetration.
7. Stay Agile and Innovative: Regularly reassessing market trends and technological advancements allows businesses to remain competitive and responsive in dynamic Asian markets.`,
	},
	{
		Title: "AI & SMEs: Key Trends, Challenges, and Opportunities",
		Content: `AI is rapidly changing how SMEs and family businesses operate, offering significant productivity gains, enhanced customer engagement, and cost efficiencies. Adoption among SMEs is growing quickly, with many businesses already using AI-powered solutions like chatbots, social media automation, and generative AI.
SMEs widely recognize AI's benefits, including improved efficiency, automated marketing, sales forecasting, and better customer service. However, common concerns include knowledge gaps, high initial costs, uncertainty about return on investment (ROI), cybersecurity, and data privacy.
Practical, user-friendly AI solutions designed specifically for SMEs are making adoption easier. Cloud-based AI services (AI-as-a-Service) and generative AI tools have increased accessibility, allowing SMEs to automate processes, create engaging content, and enhance productivity without large upfront investments.
To fully leverage AI's potential, SMEs should:
- Develop clear AI adoption strategies and roadmaps.
- Establish measurable KPIs to track AI effectiveness.
- Use cost-effective AI tools tailored to their specific business needs.
SMEs strategically adopting AI gain a competitive edge, achieve sustainable growth, and drive long-term efficiency.`,
	},
}
