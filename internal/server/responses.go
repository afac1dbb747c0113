package server

import (
	"time"

	"fritter/internal/models"
)

// The wire payloads identify users by username, never by raw ID. The
// projections below are populated from preloaded associations on read.

type freetView struct {
	ID                   uint      `json:"id"`
	Author               string    `json:"author"`
	Content              string    `json:"content"`
	AgeRestrictedViewing bool      `json:"age_restricted_viewing"`
	Likes                int       `json:"likes"`
	Dislikes             int       `json:"dislikes"`
	DateCreated          time.Time `json:"date_created"`
	DateModified         time.Time `json:"date_modified"`
}

func freetToView(freet *models.Freet) freetView {
	return freetView{
		ID:                   freet.ID,
		Author:               freet.Author.Username,
		Content:              freet.Content,
		AgeRestrictedViewing: freet.AgeRestrictedViewing,
		Likes:                freet.Likes,
		Dislikes:             freet.Dislikes,
		DateCreated:          freet.CreatedAt,
		DateModified:         freet.UpdatedAt,
	}
}

func freetsToViews(freets []models.Freet) []freetView {
	views := make([]freetView, 0, len(freets))
	for i := range freets {
		views = append(views, freetToView(&freets[i]))
	}
	return views
}

type followView struct {
	Follower  string    `json:"follower"`
	Following string    `json:"following"`
	Since     time.Time `json:"since"`
}

func followToView(follow *models.Follow) followView {
	return followView{
		Follower:  follow.Follower.Username,
		Following: follow.Following.Username,
		Since:     follow.CreatedAt,
	}
}

func followsToViews(follows []models.Follow) []followView {
	views := make([]followView, 0, len(follows))
	for i := range follows {
		views = append(views, followToView(&follows[i]))
	}
	return views
}

type reactionView struct {
	User    string `json:"user"`
	FreetID uint   `json:"freet_id"`
	Kind    string `json:"kind"`
}

func reactionToView(username string, reaction *models.Reaction) reactionView {
	kind := "dislike"
	if reaction.Liked {
		kind = "like"
	}
	return reactionView{
		User:    username,
		FreetID: reaction.FreetID,
		Kind:    kind,
	}
}

type verificationView struct {
	Username string `json:"username"`
	Verified bool   `json:"verified"`
	Name     string `json:"name,omitempty"`
	Age      string `json:"age,omitempty"`
}

func verificationToView(user *models.User) verificationView {
	view := verificationView{
		Username: user.Username,
		Verified: user.Verified,
	}
	if user.Verified {
		view.Name = user.Name
		view.Age = user.Age
	}
	return view
}

type declarationView struct {
	Verified   bool      `json:"verified"`
	Name       string    `json:"name"`
	Age        string    `json:"age"`
	DeclaredAt time.Time `json:"declared_at"`
}

func declarationsToViews(records []models.Verification) []declarationView {
	views := make([]declarationView, 0, len(records))
	for _, record := range records {
		views = append(views, declarationView{
			Verified:   record.Verified,
			Name:       record.Name,
			Age:        record.Age,
			DeclaredAt: record.CreatedAt,
		})
	}
	return views
}

type profileView struct {
	Username   string    `json:"username"`
	Verified   bool      `json:"verified"`
	DateJoined time.Time `json:"date_joined"`
}

func profileToView(user *models.User) profileView {
	return profileView{
		Username:   user.Username,
		Verified:   user.Verified,
		DateJoined: user.CreatedAt,
	}
}

func profilesToViews(users []models.User) []profileView {
	views := make([]profileView, 0, len(users))
	for i := range users {
		views = append(views, profileToView(&users[i]))
	}
	return views
}
