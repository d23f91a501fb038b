package pagelist

// ArticleSource paginates through the complete article list.
type ArticleSource struct {
	listSource
	index *Link
}

// NewArticleSource builds a source over articles, which must hold every article
// regardless of status in retrieval order. active is the slug being viewed.
// When index is non-nil the first position links to the article index page
// instead of the first article.
func NewArticleSource(articles []Node, active string, index *Link) *ArticleSource {
	return &ArticleSource{
		listSource: newListSource(articles, active),
		index:      index,
	}
}

func (s *ArticleSource) Resolve(index int) (Link, error) {
	if index == 1 && s.index != nil {
		if err := checkIndex(index, s.Total()); err != nil {
			return Link{}, err
		}
		return *s.index, nil
	}
	return s.listSource.Resolve(index)
}
