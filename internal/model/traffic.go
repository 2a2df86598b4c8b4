package model

import (
	"time"
)

// TrafficRecord 一条合成的流量记录
// 只插入，不更新不删除
type TrafficRecord struct {
	ID                 uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Timestamp          time.Time `json:"timestamp" gorm:"index;not null"`
	SourceAddress      string    `json:"source_address"`
	DestinationAddress string    `json:"destination_address"`
	Domain             string    `json:"domain" gorm:"index"`
	Protocol           string    `json:"protocol"`
	UploadBytes        int64     `json:"upload_bytes"`
	DownloadBytes      int64     `json:"download_bytes"`
}

func (TrafficRecord) TableName() string {
	return "traffic_records"
}

// TrafficStats 30天汇总统计
type TrafficStats struct {
	TotalUpload   int64 `json:"total_upload"`
	TotalDownload int64 `json:"total_download"`
	RecordCount   int64 `json:"record_count"`
}

// DomainTraffic 按域名汇总的流量
type DomainTraffic struct {
	Domain     string `json:"domain"`
	TotalBytes int64  `json:"total_bytes"`
}

// ProtocolCount 按协议统计的记录数
type ProtocolCount struct {
	Protocol string `json:"protocol"`
	Count    int64  `json:"count"`
}

// HourlyBucket 24小时历史中的一个小时桶
type HourlyBucket struct {
	Hour     time.Time `json:"hour"`
	Upload   int64     `json:"upload"`
	Download int64     `json:"download"`
}
