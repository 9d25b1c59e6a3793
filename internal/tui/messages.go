package tui

import (
	"github.com/Chackochi310/News/internal/news"
)

type articlesLoadedMsg struct {
	articles []news.Article
}

type fetchFailedMsg struct {
	err error
}

type openErrMsg struct {
	err error
}
