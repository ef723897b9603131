package queries

const GetAllArticles = `
SELECT id, title, slug, summary, content, author, image_url, published_at
FROM articles
WHERE published_at <= NOW()
ORDER BY published_at DESC
LIMIT $1 OFFSET $2;
`

const CountAllArticles = `
SELECT COUNT(*)
FROM articles
WHERE published_at <= NOW();
`

const GetArticleByID = `
SELECT id, title, slug, summary, content, author, image_url, published_at
FROM articles
WHERE id = $1 AND published_at <= NOW();
`
