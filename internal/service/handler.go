package service

import (
	"github.com/yola1107/kratos/v2/transport/http"

	"github.com/harshitajammula/ludo/internal/biz"
	"github.com/harshitajammula/ludo/internal/biz/table"
)

type JoinReq struct {
	UID      int64  `json:"uid"`
	NickName string `json:"nickName"`
	Avatar   string `json:"avatar"`
}

type UIDReq struct {
	UID int64 `json:"uid"`
}

type MoveReq struct {
	UID        int64 `json:"uid"`
	TokenIndex int32 `json:"tokenIndex"`
}

type CodeRsp struct {
	Code int32 `json:"code"`
}

type SceneData struct {
	Code  int32           `json:"code"`
	Scene *table.SceneRsp `json:"scene,omitempty"`
}

type EventsData struct {
	Code   int32       `json:"code"`
	Events []biz.Event `json:"events"`
}

// RegisterHTTPServer wires the manual routes; there is no generated API
// surface for this service.
func (s *Service) RegisterHTTPServer(srv *http.Server) {
	r := srv.Route("/")

	r.POST("/v1/room/join", s.Join)
	r.POST("/v1/room/leave", s.Leave)
	r.POST("/v1/room/offline", s.Offline)
	r.POST("/v1/room/robot", s.AddRobot)
	r.POST("/v1/game/roll", s.Roll)
	r.POST("/v1/game/move", s.Move)
	r.GET("/v1/game/scene", s.Scene)
	r.GET("/v1/game/events", s.Events)
	r.GET("/v1/room/info", s.Info)
}

func (s *Service) Join(ctx http.Context) error {
	var req JoinReq
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	return ctx.Result(200, &CodeRsp{Code: s.uc.Login(req.UID, req.NickName, req.Avatar)})
}

func (s *Service) Leave(ctx http.Context) error {
	var req UIDReq
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	return ctx.Result(200, &CodeRsp{Code: s.uc.Logout(req.UID)})
}

func (s *Service) Offline(ctx http.Context) error {
	var req UIDReq
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	return ctx.Result(200, &CodeRsp{Code: s.uc.Offline(req.UID)})
}

func (s *Service) AddRobot(ctx http.Context) error {
	var req UIDReq
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	return ctx.Result(200, &CodeRsp{Code: s.uc.AddRobot(req.UID)})
}

func (s *Service) Roll(ctx http.Context) error {
	var req UIDReq
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	return ctx.Result(200, &CodeRsp{Code: s.uc.Roll(req.UID)})
}

func (s *Service) Move(ctx http.Context) error {
	var req MoveReq
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	return ctx.Result(200, &CodeRsp{Code: s.uc.Move(req.UID, req.TokenIndex)})
}

func (s *Service) Scene(ctx http.Context) error {
	var req struct {
		UID int64 `json:"uid"`
	}
	if err := ctx.BindQuery(&req); err != nil {
		return err
	}
	scene, code := s.uc.Scene(req.UID)
	return ctx.Result(200, &SceneData{Code: code, Scene: scene})
}

func (s *Service) Events(ctx http.Context) error {
	var req struct {
		UID   int64 `json:"uid"`
		Since int64 `json:"since"`
	}
	if err := ctx.BindQuery(&req); err != nil {
		return err
	}
	events, code := s.uc.Events(req.UID, req.Since)
	if events == nil {
		events = []biz.Event{}
	}
	return ctx.Result(200, &EventsData{Code: code, Events: events})
}

func (s *Service) Info(ctx http.Context) error {
	return ctx.Result(200, s.uc.Info())
}
