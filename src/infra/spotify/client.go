// Package spotify adapts the Spotify catalog API into release records.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"discograph/src/features/config"
	"discograph/src/infra/httpx"
	"discograph/src/music"

	"golang.org/x/sync/errgroup"
)

// Client fetches an artist's releases through the Spotify Web API using
// a client-credentials token.
type Client struct {
	cfg     config.Spotify
	http    *httpx.Client
	workers int
}

// New creates a Spotify catalog client.
func New(cfg config.Spotify, httpClient *httpx.Client, trackWorkers int) *Client {
	if trackWorkers < 1 {
		trackWorkers = 1
	}
	return &Client{cfg: cfg, http: httpClient, workers: trackWorkers}
}

// Name identifies the source in logs and source URL maps.
func (c *Client) Name() string { return "spotify" }

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type albumsResponse struct {
	Items []albumItem `json:"items"`
}

type albumItem struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	AlbumType    string            `json:"album_type"`
	ReleaseDate  string            `json:"release_date"`
	Images       []albumImage      `json:"images"`
	ExternalURLs map[string]string `json:"external_urls"`
}

type albumImage struct {
	URL string `json:"url"`
}

type tracksResponse struct {
	Items []trackItem `json:"items"`
}

type trackItem struct {
	Name string `json:"name"`
}

// FetchCatalog lists the artist's albums, EPs and singles (one fixed-size
// page) and resolves each item's tracklist. Tracklist requests run
// through a bounded worker group; item order is preserved regardless.
func (c *Client) FetchCatalog(ctx context.Context) ([]*music.Release, error) {
	token, err := c.fetchToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("spotify token exchange: %w", err)
	}

	listURL := fmt.Sprintf("%s/v1/artists/%s/albums?include_groups=album,single,ep&limit=%d",
		c.cfg.APIURL, c.cfg.ArtistID, c.cfg.PageSize)
	var listing albumsResponse
	if err := c.getJSON(ctx, listURL, token, &listing); err != nil {
		return nil, fmt.Errorf("spotify album listing: %w", err)
	}

	releases := make([]*music.Release, len(listing.Items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, item := range listing.Items {
		i, item := i, item
		g.Go(func() error {
			tracksURL := fmt.Sprintf("%s/v1/albums/%s/tracks", c.cfg.APIURL, item.ID)
			var tracks tracksResponse
			if err := c.getJSON(gctx, tracksURL, token, &tracks); err != nil {
				return fmt.Errorf("spotify tracklist for %q: %w", item.Name, err)
			}
			releases[i] = mapRelease(item, tracks.Items)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return releases, nil
}

func mapRelease(item albumItem, tracks []trackItem) *music.Release {
	titles := make([]string, len(tracks))
	for i, t := range tracks {
		titles[i] = t.Name
	}

	cover := ""
	if len(item.Images) > 0 {
		cover = item.Images[0].URL
	}

	sourceURLs := map[string]string{}
	if pageURL := item.ExternalURLs["spotify"]; pageURL != "" {
		sourceURLs["spotify"] = pageURL
	}

	return &music.Release{
		Type:        music.ParseReleaseType(item.AlbumType),
		Title:       item.Name,
		Tracks:      titles,
		CoverURL:    cover,
		SourceURLs:  sourceURLs,
		ReleaseDate: item.ReleaseDate,
	}
}

// fetchToken performs the client-credentials grant.
func (c *Client) fetchToken(ctx context.Context) (string, error) {
	if c.cfg.ClientID == "" || c.cfg.ClientSecret == "" {
		return "", fmt.Errorf("missing client credentials (set SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET)")
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.AccountsURL+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response carried no access token")
	}
	return token.AccessToken, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL, token string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
