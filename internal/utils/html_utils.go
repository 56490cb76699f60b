package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const embedTemplate = `<div class="video-container"><iframe src="https://www.youtube.com/embed/%s" frameborder="0" allowfullscreen allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture"></iframe></div>`

// YouTubeVideoID 从 watch / youtu.be / embed 链接里取视频 ID
func YouTubeVideoID(link string) string {
	var rest string
	switch {
	case strings.Contains(link, "youtube.com/watch?"):
		idx := strings.Index(link, "v=")
		if idx < 0 {
			return ""
		}
		rest = link[idx+2:]
	case strings.Contains(link, "youtu.be/"):
		rest = link[strings.Index(link, "youtu.be/")+len("youtu.be/"):]
	case strings.Contains(link, "youtube.com/embed/"):
		rest = link[strings.Index(link, "youtube.com/embed/")+len("youtube.com/embed/"):]
	default:
		return ""
	}
	if i := strings.IndexAny(rest, "&?#/"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// EnhanceHTMLContent 图片加懒加载属性，单独成段的 YouTube 链接转成嵌入播放器
func EnhanceHTMLContent(htmlStr string) string {
	if htmlStr == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return htmlStr
	}

	doc.Find("img").Each(func(i int, s *goquery.Selection) {
		s.SetAttr("referrerpolicy", "no-referrer")
		s.SetAttr("loading", "lazy")
	})

	doc.Find("p").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if !strings.HasPrefix(text, "http") || strings.Contains(text, " ") {
			return
		}
		if id := YouTubeVideoID(text); id != "" {
			s.ReplaceWithHtml(strings.Replace(embedTemplate, "%s", id, 1))
		}
	})

	// 只要 body 内部
	out, _ := doc.Find("body").Html()
	if out == "" {
		out, _ = doc.Html()
	}
	return out
}
