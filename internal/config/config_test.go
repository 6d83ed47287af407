package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `
# test configuration
MQTT_BROKER=tcp://localhost:1883
MQTT_CLIENT_ID_PRODUCER=imu_producer

TOPIC_IMU=custom/reading
I2C_ADDR=0x69
ACCEL_RANGE=2
GYRO_RANGE=1
SAMPLE_INTERVAL=50
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.MQTTBroker != "tcp://localhost:1883" {
		t.Errorf("MQTTBroker got=%q want=%q", cfg.MQTTBroker, "tcp://localhost:1883")
	}
	if cfg.TopicIMU != "custom/reading" {
		t.Errorf("TopicIMU got=%q want=%q", cfg.TopicIMU, "custom/reading")
	}
	if cfg.I2CAddr != 0x69 {
		t.Errorf("I2CAddr got=0x%02X want=0x69", cfg.I2CAddr)
	}
	if cfg.AccelRange != 2 {
		t.Errorf("AccelRange got=%d want=2", cfg.AccelRange)
	}
	if cfg.GyroRange != 1 {
		t.Errorf("GyroRange got=%d want=1", cfg.GyroRange)
	}
	if cfg.SampleInterval != 50 {
		t.Errorf("SampleInterval got=%d want=50", cfg.SampleInterval)
	}

	// defaults survive when not overridden
	if cfg.TopicPose != "imu/pose" {
		t.Errorf("TopicPose got=%q want=%q", cfg.TopicPose, "imu/pose")
	}
	if cfg.WebServerPort != 8081 {
		t.Errorf("WebServerPort got=%d want=8081", cfg.WebServerPort)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
		errPart string
	}{
		{
			name:    "missing broker",
			content: "SAMPLE_INTERVAL=100\n",
			errPart: "MQTT_BROKER",
		},
		{
			name:    "unknown key",
			content: "MQTT_BROKER=tcp://x:1883\nNO_SUCH_KEY=1\n",
			errPart: "unknown config key",
		},
		{
			name:    "bad i2c address",
			content: "MQTT_BROKER=tcp://x:1883\nI2C_ADDR=0x70\n",
			errPart: "I2C_ADDR",
		},
		{
			name:    "accel range out of bounds",
			content: "MQTT_BROKER=tcp://x:1883\nACCEL_RANGE=4\n",
			errPart: "ACCEL_RANGE",
		},
		{
			name:    "gyro range not a number",
			content: "MQTT_BROKER=tcp://x:1883\nGYRO_RANGE=fast\n",
			errPart: "GYRO_RANGE",
		},
		{
			name:    "malformed line",
			content: "MQTT_BROKER=tcp://x:1883\njust some text\n",
			errPart: "invalid config line",
		},
		{
			name:    "zero sample interval",
			content: "MQTT_BROKER=tcp://x:1883\nSAMPLE_INTERVAL=0\n",
			errPart: "SAMPLE_INTERVAL",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempConfig(t, tc.content)
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load succeeded, want error containing %q", tc.errPart)
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("error %q does not mention %q", err, tc.errPart)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does_not_exist.txt"))
	if err == nil {
		t.Fatal("Load succeeded for missing file, want error")
	}
}
