// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/talent/internal/notification/internal/domain"
	"github.com/ecodeclub/talent/internal/notification/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

const offerEvents = "offer_events"

// OfferEvent offer 模块发出来的消息，一条消息落一条通知
type OfferEvent struct {
	OfferSN     string `json:"offerSN"`
	CandidateID int64  `json:"candidateID"`
	Uid         int64  `json:"uid"`
	VacancyID   int64  `json:"vacancyID"`
	Title       string `json:"title"`
	Content     string `json:"content"`
}

type OfferEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOfferEventConsumer(svc service.Service, q mq.MQ) (*OfferEventConsumer, error) {
	groupID := "notification"
	consumer, err := q.Consumer(offerEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &OfferEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *OfferEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费 offer 事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *OfferEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt OfferEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	_, err = c.svc.Create(ctx, domain.Notification{
		Uid:       evt.Uid,
		Title:     evt.Title,
		Content:   evt.Content,
		RelatedSN: evt.OfferSN,
	})
	if err != nil {
		c.logger.Error("创建 offer 通知失败",
			elog.String("sn", evt.OfferSN),
			elog.Int64("uid", evt.Uid),
			elog.FieldErr(err),
		)
	}
	return err
}
