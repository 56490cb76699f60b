package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mcaverse/internal/db"
	"mcaverse/internal/models"
	"mcaverse/internal/utils"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"
	lecturesPerPlaylist   = 50
	recentEpisodeCount    = 10
	episodeDescriptionMax = 150
)

// YouTubeClient 读取播放列表，结果进进程内缓存
type YouTubeClient struct {
	APIKey     string
	BaseURL    string
	CacheTTL   time.Duration
	HTTPClient *http.Client
}

func NewYouTubeClient(apiKey string, cacheTTL time.Duration) *YouTubeClient {
	return &YouTubeClient{
		APIKey:     apiKey,
		BaseURL:    defaultYouTubeBaseURL,
		CacheTTL:   cacheTTL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type playlistItemsResponse struct {
	Items []struct {
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Thumbnails  map[string]struct {
				URL string `json:"url"`
			} `json:"thumbnails"`
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

// PlaylistItem 播放列表中的一个视频
type PlaylistItem struct {
	VideoID      string
	Title        string
	Description  string
	ThumbnailURL string
}

// PlaylistItems 按 API 返回顺序取播放列表前 max 个视频
func (c *YouTubeClient) PlaylistItems(ctx context.Context, playlistID string, max int) ([]PlaylistItem, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("youtube api key not configured")
	}

	cacheKey := fmt.Sprintf("youtube:playlist:%s:%d", playlistID, max)
	if cached, ok := utils.GetCache().Get(cacheKey); ok {
		if items, ok := cached.([]PlaylistItem); ok {
			return items, nil
		}
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("playlistId", playlistID)
	q.Set("maxResults", strconv.Itoa(max))
	q.Set("key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/playlistItems?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("playlist %s: unexpected status %d", playlistID, resp.StatusCode)
	}

	var body playlistItemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	items := make([]PlaylistItem, 0, len(body.Items))
	for _, it := range body.Items {
		thumb := it.Snippet.Thumbnails["high"].URL
		if thumb == "" {
			thumb = it.Snippet.Thumbnails["default"].URL
		}
		items = append(items, PlaylistItem{
			VideoID:      it.Snippet.ResourceID.VideoID,
			Title:        it.Snippet.Title,
			Description:  it.Snippet.Description,
			ThumbnailURL: thumb,
		})
	}

	utils.GetCache().Set(cacheKey, items, c.CacheTTL)
	return items, nil
}

type Lecture struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	YoutubeLink string `json:"youtubeLink"`
}

type CourseTopic struct {
	Name       string    `json:"name"`
	Lectures   []Lecture `json:"lectures"`
	PlaylistID string    `json:"playlistId,omitempty"`
}

type CourseSubject struct {
	Subject string        `json:"subject"`
	Topics  []CourseTopic `json:"topics"`
}

// CourseData 课程大纲 + 各专题的视频列表；单个播放列表失败时该专题为空列表
func (c *YouTubeClient) CourseData(ctx context.Context) ([]CourseSubject, error) {
	var topics []models.CurriculumTopic
	if err := db.DB.WithContext(ctx).
		Order("subject_order ASC, position ASC, id ASC").
		Find(&topics).Error; err != nil {
		return nil, err
	}

	out := make([]CourseSubject, 0)
	index := make(map[string]int)
	for _, t := range topics {
		i, ok := index[t.Subject]
		if !ok {
			out = append(out, CourseSubject{Subject: t.Subject, Topics: make([]CourseTopic, 0)})
			i = len(out) - 1
			index[t.Subject] = i
		}

		topic := CourseTopic{Name: t.Name, Lectures: make([]Lecture, 0), PlaylistID: t.PlaylistID}
		if t.PlaylistID != "" {
			items, err := c.PlaylistItems(ctx, t.PlaylistID, lecturesPerPlaylist)
			if err != nil {
				log.Printf("[youtube] fetch playlist %s failed: %v", t.PlaylistID, err)
			}
			// 播放列表是新的在前，课程按从旧到新展示
			for j := len(items) - 1; j >= 0; j-- {
				topic.Lectures = append(topic.Lectures, Lecture{
					ID:          items[j].VideoID,
					Title:       items[j].Title,
					YoutubeLink: "https://www.youtube.com/watch?v=" + items[j].VideoID,
				})
			}
		}
		out[i].Topics = append(out[i].Topics, topic)
	}
	return out, nil
}

type Episode struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Description  string `json:"description"`
}

// RecentEpisodes 播客最近的 10 期，拉取失败返回空列表
func (c *YouTubeClient) RecentEpisodes(ctx context.Context, playlistID string) []Episode {
	episodes := make([]Episode, 0)
	if playlistID == "" {
		return episodes
	}
	items, err := c.PlaylistItems(ctx, playlistID, recentEpisodeCount)
	if err != nil {
		log.Printf("[youtube] fetch episodes failed: %v", err)
		return episodes
	}
	for j := len(items) - 1; j >= 0; j-- {
		episodes = append(episodes, Episode{
			ID:           items[j].VideoID,
			Title:        items[j].Title,
			ThumbnailURL: items[j].ThumbnailURL,
			Description:  truncate(items[j].Description, episodeDescriptionMax) + "...",
		})
	}
	return episodes
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
