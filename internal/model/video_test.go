package model

import "testing"

func TestVideoEmbedURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "watch url",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "short url",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "embed url stays embeddable",
			url:  "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "watch url with extra params",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "video id of wrong length",
			url:  "https://www.youtube.com/watch?v=short",
			want: "",
		},
		{
			name: "not a youtube url",
			url:  "https://example.com/lecture.mp4",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Video{YouTubeURL: tt.url}
			if got := v.EmbedURL(); got != tt.want {
				t.Errorf("EmbedURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuestionOptionsOrder(t *testing.T) {
	q := Question{OptionA: "one", OptionB: "two", OptionC: "three", OptionD: "four"}
	opts := q.Options()
	if len(opts) != 4 {
		t.Fatalf("expected 4 options, got %d", len(opts))
	}
	wantLetters := []string{"A", "B", "C", "D"}
	wantTexts := []string{"one", "two", "three", "four"}
	for i, opt := range opts {
		if opt.Letter != wantLetters[i] || opt.Text != wantTexts[i] {
			t.Errorf("option %d = (%s, %s), want (%s, %s)", i, opt.Letter, opt.Text, wantLetters[i], wantTexts[i])
		}
	}
}
