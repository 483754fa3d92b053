/* Copyright 2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/Comcast/dfareader/util"

	"github.com/cockroachdb/errors"
	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// MQTTCoupling reads Requests from one topic and publishes Responses
// to another.
type MQTTCoupling struct {
	Client   mqtt.Client
	InTopic  string
	OutTopic string
	QoS      byte

	// Quiesce is the disconnection quiescence in milliseconds.
	Quiesce uint

	svc *Service
}

// NewMQTTCoupling makes a client for the broker (like
// "tcp://localhost:1883") but doesn't connect.
func NewMQTTCoupling(svc *Service, cfg *MQTTConfig) *MQTTCoupling {
	mqtt.ERROR = log.New(os.Stderr, "mqtt.error ", 0)

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientId)
	opts.SetKeepAlive(time.Duration(cfg.KeepAlive) * time.Second)
	opts.Username = cfg.Username
	opts.Password = cfg.Password
	opts.AutoReconnect = true
	opts.CleanSession = true

	opts.OnConnectionLost = func(client mqtt.Client, err error) {
		log.Printf("MQTT connection lost: %v", err)
	}

	return &MQTTCoupling{
		Client:   mqtt.NewClient(opts),
		InTopic:  cfg.InTopic,
		OutTopic: cfg.OutTopic,
		QoS:      byte(cfg.QoS),
		Quiesce:  100,
		svc:      svc,
	}
}

// Start connects and subscribes.  The coupling disconnects when the
// context is done.
func (c *MQTTCoupling) Start(ctx context.Context) error {
	if t := c.Client.Connect(); t.Wait() && t.Error() != nil {
		return errors.Wrap(t.Error(), "MQTT connect")
	}

	handler := func(client mqtt.Client, msg mqtt.Message) {
		c.publish(c.handle(ctx, msg.Topic(), msg.Payload()))
	}
	if t := c.Client.Subscribe(c.InTopic, c.QoS, handler); t.Wait() && t.Error() != nil {
		return errors.Wrapf(t.Error(), "MQTT subscribe %s", c.InTopic)
	}
	log.Printf("MQTT subscribed to %s", c.InTopic)

	go func() {
		<-ctx.Done()
		c.Client.Disconnect(c.Quiesce)
	}()

	return nil
}

// handle is the processing that happens for each in-bound message.
func (c *MQTTCoupling) handle(ctx context.Context, topic string, payload []byte) []byte {
	util.Logf("MQTT incoming %s %s", topic, payload)
	return c.svc.ProcessJSON(ctx, payload)
}

func (c *MQTTCoupling) publish(out []byte) {
	t := c.Client.Publish(c.OutTopic, c.QoS, false, out)
	go func() {
		if t.Wait() && t.Error() != nil {
			log.Printf("MQTT publish error %v", t.Error())
		}
	}()
}
