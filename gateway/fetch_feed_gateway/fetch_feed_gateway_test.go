package fetch_feed_gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/utils/guid"
)

type stubFetcher struct {
	feed *gofeed.Feed
	err  error
}

func (s stubFetcher) Fetch(context.Context, string) (*gofeed.Feed, error) {
	return s.feed, s.err
}

func mustParse(t *testing.T, doc string) *gofeed.Feed {
	t.Helper()
	feed, err := gofeed.NewParser().ParseString(doc)
	require.NoError(t, err)
	return feed
}

const richRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"
  xmlns:content="http://purl.org/rss/1.0/modules/content/"
  xmlns:dc="http://purl.org/dc/elements/1.1/"
  xmlns:media="http://search.yahoo.com/mrss/">
<channel>
  <title>Example Blog</title>
  <link>https://blog.example.com/</link>
  <description>Posts &amp; notes</description>
  <item>
    <title>Full content wins</title>
    <link>https://blog.example.com/full</link>
    <guid>post-1</guid>
    <dc:creator>Ada</dc:creator>
    <pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
    <description>&lt;p&gt;Short description&lt;/p&gt;</description>
    <content:encoded><![CDATA[<p>Long body</p><script>alert(1)</script><img src="https://cdn.example.com/inline.jpg" onerror="x()">]]></content:encoded>
  </item>
  <item>
    <title>Media image</title>
    <link>https://blog.example.com/media</link>
    <media:thumbnail url="https://cdn.example.com/thumb.jpg"/>
    <description>plain</description>
  </item>
  <item>
    <title>Enclosure image</title>
    <link>https://blog.example.com/enc</link>
    <enclosure url="https://cdn.example.com/enc.png" type="image/png" length="10"/>
    <description>&lt;img src="https://cdn.example.com/other.png"&gt;</description>
  </item>
  <item>
    <description>no title, link or date</description>
  </item>
</channel>
</rss>`

func TestFetchFeedGateway_FetchFeed(t *testing.T) {
	gw := NewFetchFeedGateway(stubFetcher{feed: mustParse(t, richRSS)})

	parsed, err := gw.FetchFeed(context.Background(), "https://blog.example.com/feed.xml")
	require.NoError(t, err)

	assert.Equal(t, "Example Blog", parsed.Title)
	assert.Equal(t, "Posts & notes", parsed.Description)
	assert.Equal(t, "https://blog.example.com/", parsed.SiteURL)
	assert.Equal(t, "https://www.google.com/s2/favicons?domain=blog.example.com&sz=32", parsed.FaviconURL)
	require.Len(t, parsed.Items, 4)

	full := parsed.Items[0]
	assert.Equal(t, "post-1", full.GUID)
	assert.Equal(t, "Ada", full.Author)
	assert.Contains(t, full.Content, "<p>Long body</p>")
	assert.NotContains(t, full.Content, "<script")
	assert.NotContains(t, full.Content, "onerror")
	assert.Equal(t, "Short description", full.Summary)
	assert.Equal(t, "https://cdn.example.com/inline.jpg", full.ImageURL)
	require.NotNil(t, full.PublishedAt)
	assert.True(t, full.PublishedAt.Equal(time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)))

	media := parsed.Items[1]
	assert.Equal(t, "https://blog.example.com/media", media.GUID, "link is the guid fallback")
	assert.Equal(t, "https://cdn.example.com/thumb.jpg", media.ImageURL)
	assert.Nil(t, media.PublishedAt)

	assert.Equal(t, "https://cdn.example.com/enc.png", parsed.Items[2].ImageURL)

	bare := parsed.Items[3]
	assert.Equal(t, "Untitled", bare.Title)
	assert.Equal(t, guid.Derive("", "", "", ""), bare.GUID)
	assert.Nil(t, bare.PublishedAt)
	assert.Empty(t, bare.ImageURL)
}

func TestFetchFeedGateway_Atom(t *testing.T) {
	atom := `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Site</title>
  <link href="https://atom.example.org/"/>
  <updated>2024-03-01T00:00:00Z</updated>
  <entry>
    <title>Entry</title>
    <id>urn:uuid:1</id>
    <link href="https://atom.example.org/e1"/>
    <updated>2024-03-01T10:00:00Z</updated>
    <author><name>Grace</name></author>
    <content type="html">&lt;p&gt;Atom body&lt;/p&gt;</content>
  </entry>
</feed>`

	parsed, err := NewFetchFeedGateway(stubFetcher{feed: mustParse(t, atom)}).
		FetchFeed(context.Background(), "https://atom.example.org/feed")
	require.NoError(t, err)
	require.Len(t, parsed.Items, 1)

	entry := parsed.Items[0]
	assert.Equal(t, "urn:uuid:1", entry.GUID)
	assert.Equal(t, "Grace", entry.Author)
	assert.Equal(t, "<p>Atom body</p>", entry.Content)
	assert.Equal(t, "Atom body", entry.Summary)
	require.NotNil(t, entry.PublishedAt, "updated is used when published is missing")
}

func TestFetchFeedGateway_NoTitle(t *testing.T) {
	doc := `<rss version="2.0"><channel><title></title><item><title>x</title></item></channel></rss>`
	_, err := NewFetchFeedGateway(stubFetcher{feed: mustParse(t, doc)}).
		FetchFeed(context.Background(), "https://example.com/feed")
	assert.ErrorIs(t, err, domain.ErrFeedHasNoTitle)
	assert.Equal(t, "Feed has no title", err.Error())
}

func TestFetchFeedGateway_PropagatesFetchError(t *testing.T) {
	want := domain.NewFetchError(domain.FetchErrorTimeout, errors.New("deadline"))
	_, err := NewFetchFeedGateway(stubFetcher{err: want}).FetchFeed(context.Background(), "https://example.com/feed")
	assert.Same(t, want, err)
}

func TestFetchFeedGateway_DuplicateGUIDsAreKept(t *testing.T) {
	doc := `<rss version="2.0"><channel><title>Dup</title>
<item><title>a</title><guid>same</guid></item>
<item><title>b</title><guid>same</guid></item>
</channel></rss>`
	parsed, err := NewFetchFeedGateway(stubFetcher{feed: mustParse(t, doc)}).
		FetchFeed(context.Background(), "https://example.com/feed")
	require.NoError(t, err)
	require.Len(t, parsed.Items, 2)
	assert.Equal(t, parsed.Items[0].GUID, parsed.Items[1].GUID)
}

func TestFaviconURL(t *testing.T) {
	assert.Equal(t, "https://www.google.com/s2/favicons?domain=site.example&sz=32", FaviconURL("https://site.example/home", "https://feeds.example/x"))
	assert.Equal(t, "https://www.google.com/s2/favicons?domain=feeds.example&sz=32", FaviconURL("", "https://feeds.example/x"))
	assert.Equal(t, "", FaviconURL("", ""))
}
