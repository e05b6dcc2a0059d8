package tui

import (
	"github.com/aalvaropc/ryujin/internal/domain"
	"github.com/aalvaropc/ryujin/internal/usecase"
)

type catalogLoadedMsg struct {
	services []domain.Service
	selected []string
	err      error
}

type toggledMsg struct {
	name string
	res  usecase.SelectResult
	err  error
}
