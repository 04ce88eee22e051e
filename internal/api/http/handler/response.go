package handler

import (
	"encoding/json"
	"time"

	"github.com/dtroode/yokai-server/internal/model"
)

// statusResponse is the body of edit and delete endpoints. Details is set on failure.
type statusResponse struct {
	Status  bool   `json:"status"`
	Details string `json:"details,omitempty"`
}

type tokenResponse struct {
	APIToken string `json:"api_token"`
}

type tokenInfoResponse struct {
	TokenID   string `json:"token_id"`
	CreatedAt string `json:"created_at"`
	Current   bool   `json:"current"`
}

type inviteResponse struct {
	Code string `json:"code"`
}

type userResponse struct {
	Username       string `json:"username"`
	Description    string `json:"description"`
	DisplayName    string `json:"display_name"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	TertiaryColor  string `json:"tertiary_color"`
}

func newUserResponse(user model.User) userResponse {
	return userResponse{
		Username:       user.Username,
		Description:    user.Description,
		DisplayName:    user.DisplayName,
		PrimaryColor:   user.PrimaryColor,
		SecondaryColor: user.SecondaryColor,
		TertiaryColor:  user.TertiaryColor,
	}
}

type profileResponse struct {
	Username       string  `json:"username"`
	DisplayName    string  `json:"display_name"`
	Description    string  `json:"description"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

func newProfileResponse(p model.PublicProfile) profileResponse {
	return profileResponse{
		Username:       p.Username,
		DisplayName:    p.DisplayName,
		Description:    p.Description,
		ProfilePicture: p.ProfilePictureID,
	}
}

func newProfileResponses(profiles []model.PublicProfile) []profileResponse {
	out := make([]profileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, newProfileResponse(p))
	}
	return out
}

type publicKeyResponse struct {
	Username  string          `json:"username"`
	PublicKey string          `json:"public_key"`
	JWK       json.RawMessage `json:"jwk"`
}

type chatResponse struct {
	ChatID   string `json:"chat_id"`
	Started  string `json:"started"`
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
}

func newChatResponse(chat model.Chat) chatResponse {
	return chatResponse{
		ChatID:   chat.ChatID,
		Started:  formatTime(chat.Started),
		Sender:   chat.Sender,
		Receiver: chat.Receiver,
	}
}

func newChatResponses(chats []model.Chat) []chatResponse {
	out := make([]chatResponse, 0, len(chats))
	for _, chat := range chats {
		out = append(out, newChatResponse(chat))
	}
	return out
}

type messageResponse struct {
	MsgID      string  `json:"msg_id"`
	Published  string  `json:"published"`
	Content    string  `json:"content"`
	Sender     string  `json:"sender"`
	Receiver   string  `json:"receiver"`
	Attachment *string `json:"attachment"`
	ChatID     string  `json:"chat_id"`
}

func newMessageResponse(msg model.Message) messageResponse {
	return messageResponse{
		MsgID:      msg.MsgID,
		Published:  formatTime(msg.Published),
		Content:    msg.Content,
		Sender:     msg.Sender,
		Receiver:   msg.Receiver,
		Attachment: msg.Attachment,
		ChatID:     msg.ChatID,
	}
}

func newMessageResponses(messages []model.Message) []messageResponse {
	out := make([]messageResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, newMessageResponse(msg))
	}
	return out
}

type decryptResponse struct {
	Text string `json:"text"`
}

type fileResponse struct {
	FileID    string `json:"file_id"`
	Name      string `json:"name"`
	Owner     string `json:"file_owner"`
	CreatedAt string `json:"created_at"`
}

func newFileResponse(file model.UserFile) fileResponse {
	return fileResponse{
		FileID:    file.FileID,
		Name:      file.Name,
		Owner:     file.Owner,
		CreatedAt: formatTime(file.CreatedAt),
	}
}

func newFileResponses(files []model.UserFile) []fileResponse {
	out := make([]fileResponse, 0, len(files))
	for _, file := range files {
		out = append(out, newFileResponse(file))
	}
	return out
}

type hostResponse struct {
	Hostname       string `json:"hostname"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	TertiaryColor  string `json:"tertiary_color"`
}

func newHostResponse(info model.HostInfo) hostResponse {
	return hostResponse{
		Hostname:       info.Hostname,
		PrimaryColor:   info.PrimaryColor,
		SecondaryColor: info.SecondaryColor,
		TertiaryColor:  info.TertiaryColor,
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
