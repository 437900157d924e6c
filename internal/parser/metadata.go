package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"presence/internal/models"
)

var ErrNoMetadataPath = errors.New("metadata source not configured")

type xmlServer struct {
	Host     string `xml:"host"`
	Port     string `xml:"port"`
	Protocol string `xml:"protocol"`
}

type xmlUser struct {
	ID     string `xml:"id,attr"`
	Name   string `xml:"name"`
	Avatar string `xml:"avatar"`
}

// xmlDocument accepts any root element holding server and users.
type xmlDocument struct {
	Server xmlServer `xml:"server"`
	Users  []xmlUser `xml:"users>user"`
}

// Metadata is the decoded user feed.
type Metadata struct {
	BaseURL  string
	Profiles []models.UserProfile
	// Invalid holds the raw ids of users that were skipped.
	Invalid []string
}

func (s xmlServer) baseURL() (string, error) {
	if s.Host == "" || s.Port == "" || s.Protocol == "" {
		return "", errors.New("server descriptor incomplete")
	}
	return s.Protocol + "://" + s.Host + ":" + s.Port, nil
}

// DecodeMetadata reads the whole document. A user with a non-numeric id is
// left out and listed in Invalid; the rest of the feed still applies.
func DecodeMetadata(r io.Reader) (*Metadata, error) {
	var doc xmlDocument
	dec := xml.NewDecoder(r)
	// the feed is published as us-ascii / utf-8
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) { return input, nil }
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}

	base, err := doc.Server.baseURL()
	if err != nil {
		return nil, err
	}

	meta := &Metadata{
		BaseURL:  base,
		Profiles: make([]models.UserProfile, 0, len(doc.Users)),
	}
	for _, u := range doc.Users {
		id, err := models.ParseUserID(u.ID)
		if err != nil {
			meta.Invalid = append(meta.Invalid, u.ID)
			continue
		}
		meta.Profiles = append(meta.Profiles, models.UserProfile{
			UserID: id,
			Name:   u.Name,
			Avatar: base + u.Avatar,
		})
	}
	return meta, nil
}

func loadMetadata(path string) (*Metadata, error) {
	if path == "" {
		return nil, ErrNoMetadataPath
	}
	src, err := openSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return DecodeMetadata(src)
}
