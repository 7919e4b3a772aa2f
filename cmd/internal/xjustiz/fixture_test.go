package xjustiz

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixtureFiling is a trimmed but structurally faithful register message:
// structured file number, one person and two organization participants
// (one of them the legal entity holder), and two excerpt lines.
const fixtureFiling = `<?xml version="1.0" encoding="UTF-8"?>
<tns:nachricht.reg.0400003 xmlns:tns="http://www.xjustiz.de">
  <tns:nachrichtenkopf>
    <tns:auswahl_absender>
      <tns:absender.gericht>
        <code>R3306</code>
      </tns:absender.gericht>
    </tns:auswahl_absender>
    <tns:aktenzeichen.absender>HRB 240593 B</tns:aktenzeichen.absender>
  </tns:nachrichtenkopf>
  <tns:grunddaten>
    <tns:verfahrensdaten>
      <tns:instanzdaten>
        <tns:aktenzeichen>
          <tns:auswahl_aktenzeichen>
            <tns:aktenzeichen.strukturiert>
              <tns:register>
                <code>HRB</code>
              </tns:register>
              <tns:laufendeNummer>240593</tns:laufendeNummer>
              <tns:zusatz>B</tns:zusatz>
            </tns:aktenzeichen.strukturiert>
          </tns:auswahl_aktenzeichen>
        </tns:aktenzeichen>
      </tns:instanzdaten>
      <tns:beteiligung>
        <tns:rolle>
          <tns:rollennummer>1</tns:rollennummer>
          <tns:rollenbezeichnung>
            <code>192</code>
          </tns:rollenbezeichnung>
        </tns:rolle>
        <tns:beteiligter>
          <tns:auswahl_beteiligter>
            <tns:natuerlichePerson>
              <tns:vollerName>
                <tns:vorname>Tomas</tns:vorname>
                <tns:nachname>Saraceno</tns:nachname>
              </tns:vollerName>
              <tns:geburt>
                <tns:geburtsdatum>1973-06-27</tns:geburtsdatum>
              </tns:geburt>
              <tns:geschlecht>
                <code>M</code>
              </tns:geschlecht>
              <tns:anschrift>
                <tns:ort>Berlin</tns:ort>
                <tns:staat>
                  <tns:auswahl_staat>
                    <tns:staat>
                      <code>000</code>
                    </tns:staat>
                  </tns:auswahl_staat>
                </tns:staat>
              </tns:anschrift>
            </tns:natuerlichePerson>
          </tns:auswahl_beteiligter>
        </tns:beteiligter>
      </tns:beteiligung>
      <tns:beteiligung>
        <tns:rolle>
          <tns:rollennummer>2</tns:rollennummer>
          <tns:rollenbezeichnung>
            <code>287</code>
          </tns:rollenbezeichnung>
        </tns:rolle>
        <tns:beteiligter>
          <tns:auswahl_beteiligter>
            <tns:organisation>
              <tns:bezeichnung>
                <tns:bezeichnung.aktuell>Aerocene Foundation gGmbH</tns:bezeichnung.aktuell>
              </tns:bezeichnung>
              <tns:angabenZurRechtsform>
                <tns:rechtsform>
                  <code>234</code>
                </tns:rechtsform>
              </tns:angabenZurRechtsform>
              <tns:sitz>
                <tns:ort>Berlin</tns:ort>
              </tns:sitz>
            </tns:organisation>
          </tns:auswahl_beteiligter>
        </tns:beteiligter>
      </tns:beteiligung>
    </tns:verfahrensdaten>
  </tns:grunddaten>
  <tns:fachdatenRegister>
    <tns:basisdatenRegister>
      <tns:satzungsdatum>
        <tns:aktuellesSatzungsdatum>2021-11-04</tns:aktuellesSatzungsdatum>
      </tns:satzungsdatum>
      <tns:rechtstraeger>
        <tns:bezeichnung>
          <tns:bezeichnung.aktuell>Aerocene Foundation gGmbH</tns:bezeichnung.aktuell>
        </tns:bezeichnung>
        <tns:angabenZurRechtsform>
          <tns:rechtsform>
            <code>234</code>
          </tns:rechtsform>
        </tns:angabenZurRechtsform>
        <tns:sitz>
          <tns:ort>Berlin</tns:ort>
        </tns:sitz>
        <tns:anschrift>
          <tns:anschriftstyp>
            <code>001</code>
          </tns:anschriftstyp>
          <tns:strasse>Prinzessinnenstr.</tns:strasse>
          <tns:hausnummer>19</tns:hausnummer>
          <tns:postleitzahl>10969</tns:postleitzahl>
          <tns:ort>Berlin</tns:ort>
          <tns:staat>
            <tns:auswahl_staat>
              <tns:staat>
                <code>000</code>
              </tns:staat>
            </tns:auswahl_staat>
          </tns:staat>
        </tns:anschrift>
      </tns:rechtstraeger>
      <tns:gegenstand>Foerderung von Kunst und Kultur.</tns:gegenstand>
    </tns:basisdatenRegister>
    <tns:auszug>
      <tns:eintragungstext>
        <tns:spalte>2</tns:spalte>
        <tns:position>a</tns:position>
        <tns:laufendeNummer>1</tns:laufendeNummer>
        <tns:eintragungsart>
          <code>001</code>
        </tns:eintragungsart>
        <tns:text>Gesellschaft mit beschraenkter Haftung.</tns:text>
      </tns:eintragungstext>
      <tns:eintragungstext>
        <tns:spalte>3</tns:spalte>
        <tns:position>b</tns:position>
        <tns:laufendeNummer>2</tns:laufendeNummer>
        <tns:eintragungsart>
          <code>002</code>
        </tns:eintragungsart>
        <tns:text>Geschaeftsfuehrer: Saraceno, Tomas.</tns:text>
      </tns:eintragungstext>
    </tns:auszug>
  </tns:fachdatenRegister>
</tns:nachricht.reg.0400003>`

func parseFixture(t *testing.T, xml string) Document {
	t.Helper()
	doc, err := Parse([]byte(xml))
	require.NoError(t, err)
	return doc
}
