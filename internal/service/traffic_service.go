package service

import (
	"fmt"
	"time"

	"traffic-info/internal/broadcast"
	"traffic-info/internal/model"
	"traffic-info/internal/repository"
)

// 汇总里最多返回的域名数
const topDomainLimit = 5

// Summary 汇总接口的返回数据
type Summary struct {
	Stats         *model.TrafficStats   `json:"stats"`
	TopDomains    []model.DomainTraffic `json:"topDomains"`
	ProtocolStats []model.ProtocolCount `json:"protocolStats"`
}

// TrafficService 流量记录的写入和聚合查询
// 所有聚合都是对当前数据的即时查询，不做缓存
type TrafficService struct {
	trafficRepo repository.TrafficRepository
	hub         *broadcast.Hub
}

// NewTrafficService 创建流量服务
func NewTrafficService(trafficRepo repository.TrafficRepository, hub *broadcast.Hub) *TrafficService {
	return &TrafficService{
		trafficRepo: trafficRepo,
		hub:         hub,
	}
}

// Record 落库一条记录，然后推送给所有在线订阅者
// 推送是尽力而为的，失败不影响落库结果
func (s *TrafficService) Record(record *model.TrafficRecord) error {
	if err := s.trafficRepo.Create(record); err != nil {
		return fmt.Errorf("insert traffic record: %w", err)
	}

	s.hub.Broadcast(record)
	return nil
}

// Summary 返回30天汇总、Top5域名和协议分布
func (s *TrafficService) Summary(now time.Time) (*Summary, error) {
	since := now.Add(-summaryWindow)

	stats, err := s.trafficRepo.StatsSince(since)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}

	topDomains, err := s.trafficRepo.TopDomains(since, topDomainLimit)
	if err != nil {
		return nil, fmt.Errorf("query top domains: %w", err)
	}

	protocolStats, err := s.trafficRepo.CountByProtocol(since)
	if err != nil {
		return nil, fmt.Errorf("query protocol stats: %w", err)
	}

	return &Summary{
		Stats:         stats,
		TopDomains:    topDomains,
		ProtocolStats: protocolStats,
	}, nil
}

// History 返回过去24小时按小时分桶的上传下载量，按小时升序
// 分桶在Go里完成，SQL保持与驱动无关
func (s *TrafficService) History(now time.Time) ([]model.HourlyBucket, error) {
	since := now.Add(-historyWindow)

	records, err := s.trafficRepo.FindSince(since)
	if err != nil {
		return nil, fmt.Errorf("query history records: %w", err)
	}

	byHour := make(map[time.Time]*model.HourlyBucket)
	for _, record := range records {
		hour := record.Timestamp.UTC().Truncate(time.Hour)
		bucket, ok := byHour[hour]
		if !ok {
			bucket = &model.HourlyBucket{Hour: hour}
			byHour[hour] = bucket
		}
		bucket.Upload += record.UploadBytes
		bucket.Download += record.DownloadBytes
	}

	// 记录按时间升序取出，小时桶按首次出现顺序排列即为升序
	buckets := make([]model.HourlyBucket, 0, len(byHour))
	seen := make(map[time.Time]bool, len(byHour))
	for _, record := range records {
		hour := record.Timestamp.UTC().Truncate(time.Hour)
		if seen[hour] {
			continue
		}
		seen[hour] = true
		buckets = append(buckets, *byHour[hour])
	}

	return buckets, nil
}
